package emotion

import "strings"

// Label 表示机器人回复所呈现的情绪标签。
type Label string

const (
	Apologetic Label = "apologetic"
	Excited    Label = "excited"
	Curious    Label = "curious"
	Neutral    Label = "neutral"
)

type bucket struct {
	label   Label
	markers []string
}

// buckets 按顺序匹配，且区分大小写："Sorry" 不会命中 apologetic。
var buckets = []bucket{
	{label: Apologetic, markers: []string{"sorry", "cannot", "can't"}},
	{label: Excited, markers: []string{"!"}},
	{label: Curious, markers: []string{"?"}},
}

// Tag 根据生成文本的表面特征给出唯一的情绪标签，未命中时返回 Neutral。
func Tag(text string) Label {
	for _, b := range buckets {
		for _, marker := range b.markers {
			if strings.Contains(text, marker) {
				return b.label
			}
		}
	}
	return Neutral
}

// Labels 返回全部可能的情绪标签。
func Labels() []Label {
	return []Label{Apologetic, Excited, Curious, Neutral}
}
