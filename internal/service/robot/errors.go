package robot

import (
	"errors"
	"fmt"
)

// Kind 区分失败类别，由 HTTP 层映射为状态码。
type Kind string

const (
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindUpstreamFailure Kind = "PROCESSING_ERROR"
)

// Error 是带有类别的业务错误，Message 可以直接返回给调用方。
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput 构造参数错误。
func InvalidInput(message string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: err}
}

// UpstreamFailure 构造生成失败错误，对外只暴露通用文案。
func UpstreamFailure(err error) *Error {
	return &Error{Kind: KindUpstreamFailure, Message: MessageProcessingError, Err: err}
}

// KindOf 返回错误类别，非 *Error 的错误一律视为 KindUpstreamFailure。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstreamFailure
}

// PublicMessage 返回可以对外展示的错误文案。
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return MessageProcessingError
}
