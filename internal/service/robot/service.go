package robot

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/metrics"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
	"github.com/zhouzirui/servo-bot/backend/internal/service/ai"
)

const (
	CodeResponseGenerated = "RESPONSE_GENERATED"

	MessageResponseGenerated = "Response generated successfully"
	MessageInvalidInput      = "Prompt and robotId are required"
	MessageProcessingError   = "Failed to generate response"
)

const defaultTimeout = 30 * time.Second

// Service 串联生成网关与规则解释流水线。
type Service struct {
	generator ai.Generator
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewService 创建服务。timeout 限定单次生成调用的耗时，<=0 时使用默认值。
func NewService(generator ai.Generator, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Provider 返回当前生成网关的名称。
func (s *Service) Provider() string {
	return s.generator.Name()
}

// Respond 校验请求、调用生成网关一次，并把回复解释为机器人响应。
// 错误一定是 *Error，其 Kind 决定对外状态码。
func (s *Service) Respond(ctx context.Context, req model.GenerateRequest) (model.Response, error) {
	if err := req.Validate(); err != nil {
		return model.Response{}, InvalidInput(MessageInvalidInput, err)
	}

	servo := req.Servo()
	generationID := uuid.NewString()
	logger := s.logger.With(
		zap.String("generationId", generationID),
		zap.String("robotId", req.RobotID),
		zap.String("provider", s.generator.Name()))

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.generator.Generate(genCtx, req.Prompt, servo)
	elapsed := time.Since(start)
	if err != nil {
		metrics.GenerationDuration.WithLabelValues(s.generator.Name(), "error").Observe(elapsed.Seconds())
		logger.Error("generation failed",
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return model.Response{}, UpstreamFailure(err)
	}
	metrics.GenerationDuration.WithLabelValues(s.generator.Name(), "success").Observe(elapsed.Seconds())

	resp := Interpret(req.RobotID, servo, req.Prompt, text, s.now())
	metrics.IntentsTotal.WithLabelValues(string(resp.Response.Type)).Inc()
	metrics.MovementsTotal.WithLabelValues(string(resp.Movement.Direction)).Inc()

	logger.Info("robot response generated",
		zap.Duration("elapsed", elapsed),
		zap.String("intent", string(resp.Response.Type)),
		zap.String("emotion", string(resp.Response.Emotion)),
		zap.String("direction", string(resp.Movement.Direction)))
	return resp, nil
}
