package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// 往本地 API 写入一批演示数据：用户、帖子、评论、点赞、关注

var httpClient *http.Client

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	users := flag.Int("users", 5, "number of demo users")
	postsPerUser := flag.Int("posts", 3, "posts per user")
	flag.Parse()

	userIDs := make([]int32, 0, *users)
	for i := 0; i < *users; i++ {
		id, err := createEntity(*baseURL+"/users", map[string]interface{}{
			"name":     fmt.Sprintf("demo-user-%d", i+1),
			"email":    fmt.Sprintf("demo%d@example.com", i+1),
			"password": "demo-pass-123",
		})
		if err != nil {
			log.Fatalf("create user: %v", err)
		}
		userIDs = append(userIDs, id)
	}

	postIDs := make([]int32, 0, *users**postsPerUser)
	for _, uid := range userIDs {
		for j := 0; j < *postsPerUser; j++ {
			id, err := createEntity(*baseURL+"/posts", map[string]interface{}{
				"creatorId": uid,
				"title":     fmt.Sprintf("Post %d by user %d", j+1, uid),
				"content":   "Seeded demo content.",
			})
			if err != nil {
				log.Fatalf("create post: %v", err)
			}
			postIDs = append(postIDs, id)
		}
	}

	// 每个用户给第一个帖子评论并点赞，关注下一个用户
	for i, uid := range userIDs {
		if len(postIDs) > 0 {
			if _, err := createEntity(*baseURL+"/comments", map[string]interface{}{
				"creatorId": uid,
				"postId":    postIDs[0],
				"content":   fmt.Sprintf("Comment from user %d", uid),
			}); err != nil {
				log.Fatalf("create comment: %v", err)
			}
			if err := post(*baseURL+"/likes/posts", map[string]interface{}{
				"userId": uid,
				"postId": postIDs[0],
			}); err != nil {
				log.Fatalf("toggle like: %v", err)
			}
		}
		next := userIDs[(i+1)%len(userIDs)]
		if next != uid {
			if err := post(fmt.Sprintf("%s/users/%d/following/%d", *baseURL, uid, next), nil); err != nil {
				log.Fatalf("follow: %v", err)
			}
		}
	}

	log.Printf("Seeded %d users and %d posts", len(userIDs), len(postIDs))
}

// createEntity POST 并从响应里取出新实体的 ID
func createEntity(url string, body map[string]interface{}) (int32, error) {
	data, err := doPost(url, body)
	if err != nil {
		return 0, err
	}
	var entity struct {
		ID int32 `json:"id"`
	}
	if err := json.Unmarshal(data, &entity); err != nil {
		return 0, err
	}
	return entity.ID, nil
}

func post(url string, body map[string]interface{}) error {
	_, err := doPost(url, body)
	return err
}

func doPost(url string, body map[string]interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	resp, err := httpClient.Post(url, "application/json", reader)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: status %d: %s", url, resp.StatusCode, raw)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return parsed.Data, nil
}
