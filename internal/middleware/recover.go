package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/pkg/utils"
)

// Recover 捕获 handler 中的 panic，记录堆栈并返回统一的 500 信封。
func Recover(logger *zap.Logger, code, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("requestId", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"))

				// websocket 升级后连接已被接管，无法再写入 HTTP 响应。
				if r.Header.Get("Connection") == "Upgrade" {
					return
				}
				utils.RespondError(w, http.StatusInternalServerError, code, message)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
