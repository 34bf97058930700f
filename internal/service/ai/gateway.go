package ai

import (
	"context"
	"errors"
)

// FallbackText 是网关返回空内容时使用的回复。
const FallbackText = "Sorry, I couldn't generate a response."

// ErrGeneratorUnavailable 表示未配置可用的生成网关。
var ErrGeneratorUnavailable = errors.New("generator unavailable")

// Generator 调用第三方生成接口，返回原始回复文本。
type Generator interface {
	Generate(ctx context.Context, prompt string, servoPosition int) (string, error)
	Name() string
}

// UnavailableGenerator 在网关初始化失败时占位，每次调用都返回错误。
type UnavailableGenerator struct {
	provider string
	reason   error
}

// NewUnavailableGenerator 创建占位网关，reason 为初始化失败的原因。
func NewUnavailableGenerator(provider string, reason error) *UnavailableGenerator {
	return &UnavailableGenerator{provider: provider, reason: reason}
}

// Generate 总是失败。
func (g *UnavailableGenerator) Generate(context.Context, string, int) (string, error) {
	if g.reason == nil {
		return "", ErrGeneratorUnavailable
	}
	return "", errors.Join(ErrGeneratorUnavailable, g.reason)
}

// Name 返回网关名称。
func (g *UnavailableGenerator) Name() string {
	return g.provider
}

func textOrFallback(text string) string {
	if text == "" {
		return FallbackText
	}
	return text
}
