package errno

import (
	"errors"
	"fmt"
)

// Errno 业务错误码，Code 与 HTTP 状态码对齐
type Errno struct {
	Code    int
	Message string
}

// Error 实现 error 接口
func (e *Errno) Error() string {
	return e.Message
}

var (
	ErrParameterInvalid = &Errno{Code: 400, Message: "invalid parameter"}
	ErrSelfFollow       = &Errno{Code: 400, Message: "cannot follow yourself"}
	ErrNotLiked         = &Errno{Code: 400, Message: "post not liked"}
	ErrUnauthorized     = &Errno{Code: 401, Message: "unauthorized"}

	ErrUserNotFound         = &Errno{Code: 404, Message: "user not found"}
	ErrPostNotFound         = &Errno{Code: 404, Message: "post not found"}
	ErrNotificationNotFound = &Errno{Code: 404, Message: "notification not found"}

	ErrPersistence = &Errno{Code: 500, Message: "persistence error"}
)

// PersistenceError 存储层失败（约束冲突、I/O 错误等），对调用方统一表现为 ErrPersistence
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Message, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPersistence) match any PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Persistence wraps err as a PersistenceError unless it is already a
// domain Errno (those pass through untouched). nil stays nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var en *Errno
	if errors.As(err, &en) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// Code 返回错误对应的业务码，未知错误按 500 处理
func Code(err error) int {
	var en *Errno
	if errors.As(err, &en) {
		return en.Code
	}
	return ErrPersistence.Code
}
