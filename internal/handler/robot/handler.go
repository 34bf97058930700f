package robot

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/metrics"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
	robotservice "github.com/zhouzirui/servo-bot/backend/internal/service/robot"
	"github.com/zhouzirui/servo-bot/backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

const (
	transportHTTP      = "http"
	transportWebSocket = "websocket"
)

// Responder 生成一次机器人响应。
type Responder interface {
	Respond(ctx context.Context, req model.GenerateRequest) (model.Response, error)
}

// Handler 提供 /generate 与 /ws 两个入口，共享同一套校验与错误映射。
type Handler struct {
	baseCtx  context.Context
	svc      Responder
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New 创建 Handler。ctx 是服务生命周期的上下文，取消后所有 websocket 连接都会被关闭。
func New(ctx context.Context, svc Responder, logger *zap.Logger) *Handler {
	return &Handler{
		baseCtx: ctx,
		svc:     svc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册路由。
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate", h.handleGenerate)
	r.Get("/ws", h.handleWebSocket)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			h.logger.Warn("read request body failed", zap.Error(err))
		}
		status, env := h.failure(robotservice.InvalidInput(MessageInvalidBody, err))
		h.respond(w, transportHTTP, status, env)
		return
	}

	logger := h.logger.With(zap.String("requestId", middleware.GetReqID(r.Context())))
	status, env := h.process(r.Context(), logger, body)
	h.respond(w, transportHTTP, status, env)
}

// process 解析一帧请求并调用服务，返回状态码与响应信封。
func (h *Handler) process(ctx context.Context, logger *zap.Logger, body []byte) (int, utils.Envelope) {
	req, err := decodeRequest(body)
	if err != nil {
		logger.Debug("rejected request", zap.Error(err))
		return h.failure(err)
	}

	resp, err := h.svc.Respond(ctx, req)
	if err != nil {
		return h.failure(err)
	}
	return http.StatusOK, utils.Success(robotservice.CodeResponseGenerated, robotservice.MessageResponseGenerated, resp)
}

func (h *Handler) failure(err error) (int, utils.Envelope) {
	kind := robotservice.KindOf(err)
	status := http.StatusInternalServerError
	if kind == robotservice.KindInvalidInput {
		status = http.StatusBadRequest
	}
	return status, utils.Failure(string(kind), robotservice.PublicMessage(err))
}

func (h *Handler) respond(w http.ResponseWriter, transport string, status int, env utils.Envelope) {
	metrics.RequestsTotal.WithLabelValues(transport, env.Code).Inc()
	utils.RespondJSON(w, status, env)
}
