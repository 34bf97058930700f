package robot

import (
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/emotion"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/intent"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/movement"
)

// Utterance 是机器人要说的话以及附带的分类信息。
type Utterance struct {
	Text    string          `json:"text"`
	Type    intent.Category `json:"type"`
	Emotion emotion.Label   `json:"emotion"`
}

// Conversation 汇总本轮提问的会话元数据。
type Conversation struct {
	QuestionType     intent.Category `json:"questionType"`
	IsPersonal       bool            `json:"isPersonal"`
	RequiresMovement bool            `json:"requiresMovement"`
}

// Response 是针对一次提问返回给机器人的结构化响应。
type Response struct {
	RobotID              string             `json:"robotId"`
	Timestamp            int64              `json:"timestamp"`
	Response             Utterance          `json:"response"`
	Movement             movement.Directive `json:"movement"`
	Conversation         Conversation       `json:"conversation"`
	CurrentServoPosition int                `json:"currentServoPosition"`
}
