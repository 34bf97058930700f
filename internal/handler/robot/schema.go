package robot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/xeipuuv/gojsonschema"

	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
	robotservice "github.com/zhouzirui/servo-bot/backend/internal/service/robot"
)

// MessageInvalidBody 用于无法解析的请求体。
const MessageInvalidBody = "Invalid request body"

const generateRequestSchema = `{
  "type": "object",
  "properties": {
    "prompt":        {"type": "string", "minLength": 1},
    "robotId":       {"type": "string", "minLength": 1},
    "servoPosition": {"type": ["integer", "null"]}
  },
  "required": ["prompt", "robotId"]
}`

var requestSchema = mustSchema(generateRequestSchema)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return schema
}

// decodeRequest 先做 schema 校验再反序列化，错误一律为 INVALID_INPUT。
func decodeRequest(body []byte) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	result, err := requestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return req, robotservice.InvalidInput(MessageInvalidBody, err)
	}
	if !result.Valid() {
		return req, robotservice.InvalidInput(schemaMessage(result.Errors()), schemaError(result.Errors()))
	}

	var wire generateBody
	if err := json.Unmarshal(body, &wire); err != nil {
		return req, robotservice.InvalidInput(MessageInvalidBody, err)
	}
	req.Prompt = wire.Prompt
	req.RobotID = wire.RobotID
	if wire.ServoPosition != nil {
		servo, err := servoDegrees(*wire.ServoPosition)
		if err != nil {
			return req, robotservice.InvalidInput(MessageInvalidBody, err)
		}
		req.ServoPosition = &servo
	}
	return req, nil
}

// generateBody 是请求体的解码形式。servoPosition 先按数字读取，
// 这样 45.0 这类整数值的浮点写法与 schema 的 integer 判定一致。
type generateBody struct {
	Prompt        string   `json:"prompt"`
	RobotID       string   `json:"robotId"`
	ServoPosition *float64 `json:"servoPosition"`
}

func servoDegrees(v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("servoPosition %v is not a representable integer", v)
	}
	return int(v), nil
}

// schemaMessage 缺少或为空的 prompt/robotId 沿用客户端熟悉的文案。
func schemaMessage(errs []gojsonschema.ResultError) string {
	for _, e := range errs {
		if e.Type() == "required" {
			return robotservice.MessageInvalidInput
		}
		switch e.Field() {
		case "prompt", "robotId":
			return robotservice.MessageInvalidInput
		}
	}
	return MessageInvalidBody
}

func schemaError(errs []gojsonschema.ResultError) error {
	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, errors.New(e.String()))
	}
	return errors.Join(joined...)
}
