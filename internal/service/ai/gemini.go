package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zhouzirui/servo-bot/backend/internal/config"
)

// GeminiGenerator 通过 Gemini generateContent 接口生成回复。
type GeminiGenerator struct {
	client   *genai.Client
	model    string
	template PromptTemplate
	logger   *zap.Logger
}

// NewGeminiGenerator 使用配置创建 Gemini 网关。
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if !cfg.Enabled() {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:   client,
		model:    model,
		template: DefaultPromptTemplate(),
		logger:   logger,
	}, nil
}

// Generate 发送一次 generateContent 请求，不做重试。
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, servoPosition int) (string, error) {
	contents := genai.Text(g.template.ComposePrompt(prompt, servoPosition))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := firstCandidateText(resp)
	g.logger.Debug("gemini response received",
		zap.String("model", g.model),
		zap.Int("length", len(text)))
	return textOrFallback(text), nil
}

// Name 返回网关名称。
func (g *GeminiGenerator) Name() string {
	return config.ProviderGemini
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	part := candidate.Content.Parts[0]
	if part == nil {
		return ""
	}
	return part.Text
}
