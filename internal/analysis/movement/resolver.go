package movement

import (
	"strings"

	"github.com/zhouzirui/servo-bot/backend/internal/analysis/intent"
)

// Direction 表示舵机单一旋转轴上的目标方向。
type Direction string

const (
	None   Direction = "none"
	Right  Direction = "right"
	Left   Direction = "left"
	Center Direction = "center"
)

// Angle 返回方向对应的舵机角度（度）。
func (d Direction) Angle() int {
	switch d {
	case Right:
		return 180
	case Left:
		return 0
	default:
		return 90
	}
}

// Directive 描述舵机应执行的动作以及原因。
type Directive struct {
	Direction Direction `json:"direction"`
	Angle     int       `json:"angle"`
	Reason    string    `json:"reason"`
}

type rule struct {
	direction Direction
	keywords  []string
	reason    string
}

var rules = []rule{
	{direction: Right, keywords: []string{"right"}, reason: "looking right as requested"},
	{direction: Left, keywords: []string{"left"}, reason: "looking left as requested"},
	{direction: Center, keywords: []string{"straight", "forward"}, reason: "looking straight ahead"},
}

// Still 是不需要移动时的指令。
var Still = Directive{Direction: None, Angle: None.Angle(), Reason: "no movement needed"}

// Resolve 根据生成文本、提问分类与原始提问推导舵机指令。
// 只有 MOVEMENT 类提问或文本中出现 "look" 时才会解析方向。
func Resolve(text string, category intent.Category, prompt string) Directive {
	checkText := strings.ToLower(text + " " + prompt)

	if category != intent.Movement && !strings.Contains(checkText, "look") {
		return Still
	}

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(checkText, keyword) {
				return Directive{
					Direction: r.direction,
					Angle:     r.direction.Angle(),
					Reason:    r.reason,
				}
			}
		}
	}
	return Still
}
