package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 错误分类，路由层按 Kind 决定响应状态码
type ErrorKind string

const (
	KindValidation ErrorKind = "validation" // 调用方输入错误，400
	KindNotFound   ErrorKind = "not_found"  // 无匹配数据，404
	KindAPI        ErrorKind = "api"        // 上游业务错误，默认 500，可携带显式状态码
	KindNetwork    ErrorKind = "network"    // 传输层失败（DNS、连接重置等）
	KindTimeout    ErrorKind = "timeout"    // 上游请求超时
	KindParse      ErrorKind = "parse"      // 响应体解析失败
)

// Error 统一的服务层错误，携带分类、状态码和对外消息
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError 输入校验错误
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError 数据未找到错误
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// NewAPIError 上游业务错误，status 为 0 时默认 500
func NewAPIError(message string, status int) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: KindAPI, Status: status, Message: message}
}

// NewNetworkError 传输层错误
func NewNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// NewTimeoutError 超时错误
func NewTimeoutError(message string, err error) *Error {
	return &Error{Kind: KindTimeout, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// NewParseError 解析错误
func NewParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// AsError 提取错误链中的 *Error
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := AsError(err); ok {
		return e.Kind == kind
	}
	return false
}

// StatusOf 取错误的响应状态码，非 *Error 一律 500
func StatusOf(err error) int {
	if e, ok := AsError(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf 取错误的对外消息，非 *Error 返回通用文案，不暴露内部细节
func MessageOf(err error) string {
	if e, ok := AsError(err); ok && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}
