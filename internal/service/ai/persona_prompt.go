package ai

import (
	"fmt"
	"strings"
)

// PromptTemplate 描述发送给生成网关的人设指令。
type PromptTemplate struct {
	Persona      string
	StyleRules   []string
	Example      string
	PositionHint string
}

// DefaultPromptTemplate 返回机器人默认的人设与回复风格。
func DefaultPromptTemplate() PromptTemplate {
	return PromptTemplate{
		Persona: "You are a friendly robot assistant.",
		StyleRules: []string{
			"Response should be detailed and natural.",
			"When asked to look somewhere, explain what you see or why you're looking there.",
		},
		Example:      `For example, instead of just saying "Right!", say "I'll look to the right! I can see [describe what's there]".`,
		PositionHint: "Current position: %d degrees.",
	}
}

// SystemPrompt 生成嵌入当前舵机位置的人设指令。
func (t PromptTemplate) SystemPrompt(servoPosition int) string {
	parts := make([]string, 0, len(t.StyleRules)+3)
	parts = append(parts, t.Persona)
	parts = append(parts, t.StyleRules...)
	if t.Example != "" {
		parts = append(parts, t.Example)
	}
	if t.PositionHint != "" {
		parts = append(parts, fmt.Sprintf(t.PositionHint, servoPosition))
	}
	return strings.Join(parts, " ")
}

// ComposePrompt 将人设指令与用户提问拼接为单条文本。
func (t PromptTemplate) ComposePrompt(prompt string, servoPosition int) string {
	return t.SystemPrompt(servoPosition) + "\n" + prompt
}
