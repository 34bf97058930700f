package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/config"
)

// NewGenerator 按 GENERATION_PROVIDER 创建生成网关。
func NewGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Generator, error) {
	switch cfg.Generation.Provider {
	case config.ProviderGemini, "":
		gen, err := NewGeminiGenerator(ctx, cfg.Gemini, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderArk:
		gen, err := NewArkGenerator(ctx, cfg.AI, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Generation.Provider)
	}
}
