package intent

import "strings"

// Category 表示对用户提问意图的粗粒度分类。
type Category string

const (
	Identity    Category = "IDENTITY"
	Information Category = "INFORMATION"
	Capability  Category = "CAPABILITY"
	Movement    Category = "MOVEMENT"
	General     Category = "GENERAL"
)

type rule struct {
	category Category
	phrases  []string
}

// rules 按顺序匹配，先命中者生效。IDENTITY 必须排在 INFORMATION 之前，
// 否则 "who are you, what is your job" 会被误判。
var rules = []rule{
	{category: Identity, phrases: []string{"who are you", "your name"}},
	{category: Information, phrases: []string{"who is", "what is"}},
	{category: Capability, phrases: []string{"can you", "could you"}},
	{category: Movement, phrases: []string{"look", "turn"}},
}

// Classify 根据关键词对提问进行分类，未命中任何规则时返回 General。
func Classify(prompt string) Category {
	normalized := strings.ToLower(prompt)
	for _, r := range rules {
		for _, phrase := range r.phrases {
			if strings.Contains(normalized, phrase) {
				return r.category
			}
		}
	}
	return General
}

// IsPersonal 表示提问是否针对机器人本身。
func (c Category) IsPersonal() bool {
	return c == Identity
}

// RequiresMovement 表示该类提问是否应当伴随舵机动作。
func (c Category) RequiresMovement() bool {
	return c == Movement || c == Identity
}
