package robot

import "errors"

// DefaultServoPosition 是未上报舵机位置时使用的角度。
const DefaultServoPosition = 90

// ErrPromptAndRobotRequired 表示缺少 prompt 或 robotId。
var ErrPromptAndRobotRequired = errors.New("prompt and robotId are required")

// GenerateRequest 是机器人发来的一次提问。
type GenerateRequest struct {
	Prompt        string `json:"prompt"`
	RobotID       string `json:"robotId"`
	ServoPosition *int   `json:"servoPosition,omitempty"`
}

// Validate 检查必填字段。
func (r GenerateRequest) Validate() error {
	if r.Prompt == "" || r.RobotID == "" {
		return ErrPromptAndRobotRequired
	}
	return nil
}

// Servo 返回上报的舵机位置，缺省时为 DefaultServoPosition。
func (r GenerateRequest) Servo() int {
	if r.ServoPosition == nil {
		return DefaultServoPosition
	}
	return *r.ServoPosition
}
