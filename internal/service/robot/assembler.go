package robot

import (
	"strings"
	"time"

	"github.com/zhouzirui/servo-bot/backend/internal/analysis/emotion"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/intent"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/movement"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
)

const (
	lookRightText = "I'll look to the right! Let me see what's there for you."
	lookLeftText  = "I'll look to the left! Let me check what's there for you."
)

// Elaborate 将单个方向词的回复扩写为完整句子，其余文本原样返回。
func Elaborate(text string) string {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "right", "right!":
		return lookRightText
	case "left", "left!":
		return lookLeftText
	default:
		return text
	}
}

// Interpret 把生成文本解释为机器人响应。除 at 外所有输入都决定输出。
func Interpret(robotID string, servoPosition int, prompt, generated string, at time.Time) model.Response {
	text := Elaborate(generated)
	category := intent.Classify(prompt)

	return model.Response{
		RobotID:   robotID,
		Timestamp: at.UnixMilli(),
		Response: model.Utterance{
			Text:    text,
			Type:    category,
			Emotion: emotion.Tag(text),
		},
		Movement: movement.Resolve(text, category, prompt),
		Conversation: model.Conversation{
			QuestionType:     category,
			IsPersonal:       category.IsPersonal(),
			RequiresMovement: category.RequiresMovement(),
		},
		CurrentServoPosition: servoPosition,
	}
}
