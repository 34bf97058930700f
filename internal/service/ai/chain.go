package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/config"
)

// ChainGenerator 通过 eino 链（模板 + 聊天模型）生成回复。
type ChainGenerator struct {
	name     string
	chain    compose.Runnable[map[string]any, *schema.Message]
	template PromptTemplate
	logger   *zap.Logger
}

// NewArkGenerator 使用 Ark 配置创建聊天模型并编译生成链。
func NewArkGenerator(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*ChainGenerator, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewChainGenerator(ctx, config.ProviderArk, chatModel, logger)
}

// NewChainGenerator 将人设指令作为系统消息、提问作为用户消息编译成链。
func NewChainGenerator(ctx context.Context, name string, chatModel model.ChatModel, logger *zap.Logger) (*ChainGenerator, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generation chain: %w", err)
	}

	return &ChainGenerator{
		name:     name,
		chain:    runnable,
		template: DefaultPromptTemplate(),
		logger:   logger,
	}, nil
}

// Generate 执行一次链调用。
func (g *ChainGenerator) Generate(ctx context.Context, prompt string, servoPosition int) (string, error) {
	input := map[string]any{
		"system": g.template.SystemPrompt(servoPosition),
		"query":  prompt,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run generation chain: %w", err)
	}

	var text string
	if response != nil {
		text = response.Content
	}
	g.logger.Debug("chain response received",
		zap.String("provider", g.name),
		zap.Int("length", len(text)))
	return textOrFallback(text), nil
}

// Name 返回网关名称。
func (g *ChainGenerator) Name() string {
	return g.name
}
