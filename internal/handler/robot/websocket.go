package robot

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/metrics"
)

// handleWebSocket 每收到一帧请求就回一帧信封，帧之间不保留状态。
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade 已经写回错误响应。
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodyBytes)

	connID := uuid.NewString()
	logger := h.logger.With(
		zap.String("connId", connID),
		zap.String("requestId", middleware.GetReqID(r.Context())))
	logger.Info("websocket connected", zap.String("remote", r.RemoteAddr))

	// 连接断开或服务关闭时取消正在进行的生成；服务关闭时还要主动关掉连接，
	// 因为 http.Server.Shutdown 不会处理已被接管的连接。
	ctx, cancel := context.WithCancel(h.baseCtx)
	defer cancel()
	stopClose := context.AfterFunc(ctx, func() {
		if h.baseCtx.Err() != nil {
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			logger.Info("closing websocket on shutdown")
		}
		_ = conn.Close()
	})
	defer stopClose()

	frames := make(chan []byte)
	go func() {
		defer close(frames)
		defer cancel()
		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Warn("websocket read failed", zap.Error(err))
				}
				return
			}
			if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
				continue
			}
			select {
			case frames <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	for data := range frames {
		_, env := h.process(ctx, logger, data)
		metrics.RequestsTotal.WithLabelValues(transportWebSocket, env.Code).Inc()
		if err := conn.WriteJSON(env); err != nil {
			logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
	logger.Info("websocket closed")
}
