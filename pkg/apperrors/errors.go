package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 实体类型，用于 NotFoundError 区分具体实体
const (
	EntityUser    = "user"
	EntityPost    = "post"
	EntityComment = "comment"
)

// NotFoundError 实体不存在错误（前置检查抛出，不再包装）
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewUserNotFound(id int32) *NotFoundError {
	return &NotFoundError{Entity: EntityUser, ID: id}
}

func NewPostNotFound(id int32) *NotFoundError {
	return &NotFoundError{Entity: EntityPost, ID: id}
}

func NewCommentNotFound(id int32) *NotFoundError {
	return &NotFoundError{Entity: EntityComment, ID: id}
}

// ErrDuplicateEmail 邮箱唯一约束冲突
// 依赖数据库唯一索引检测，不做前置查询（并发注册下数据库约束才是唯一可信来源）
var ErrDuplicateEmail = errors.New("email address is already taken")

// RepositoryError 仓库层未分类错误，携带底层原因用于诊断
type RepositoryError struct {
	Op  string // 哪个操作失败，例如 "create user"
	Err error  // 底层错误
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error while %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// IsNotFound 判断是否为某个实体的 NotFoundError
func IsNotFound(err error, entity string) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Entity == entity
	}
	return false
}

// Postgres 错误码
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation 判断底层错误是否为指定约束的唯一键冲突
// constraint 为空时匹配任意唯一键冲突
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation 判断底层错误是否为外键约束冲突
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// Wrap 把持久层错误包装为 RepositoryError
// 已经是领域错误（NotFound / DuplicateEmail）的直接透传，不二次包装
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) || errors.Is(err, ErrDuplicateEmail) {
		return err
	}
	return &RepositoryError{Op: op, Err: err}
}

// TranslateNotFound 把 gorm 的记录不存在错误翻译为具体实体的 NotFoundError
func TranslateNotFound(err error, entity string, id int32, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return Wrap(op, err)
}
