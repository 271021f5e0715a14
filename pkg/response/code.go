package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserNotFound   = 10001
	ErrDuplicateEmail = 10002

	// 内容模块错误 200xx
	ErrPostNotFound    = 20001
	ErrCommentNotFound = 20002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
