package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope 是所有接口统一的响应结构，错误时 Data 为 null。
type Envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success 构造成功响应。
func Success(code, message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Code: code, Message: message, Data: data}
}

// Failure 构造错误响应。
func Failure(code, message string) Envelope {
	return Envelope{Status: StatusError, Code: code, Message: message, Data: nil}
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, Failure(code, message))
}
