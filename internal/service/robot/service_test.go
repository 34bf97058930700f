package robot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/zhouzirui/servo-bot/backend/internal/analysis/emotion"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/intent"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/movement"
	"github.com/zhouzirui/servo-bot/backend/internal/metrics"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
)

func TestMain(m *testing.M) {
	// genai 间接引入 opencensus，其 init 会启动常驻 worker。
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type stubGenerator struct {
	text      string
	err       error
	block     bool
	calls     int
	gotPrompt string
	gotServo  int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, servoPosition int) (string, error) {
	g.calls++
	g.gotPrompt = prompt
	g.gotServo = servoPosition
	if g.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.text, g.err
}

func (g *stubGenerator) Name() string {
	return "stub"
}

func intPtr(v int) *int { return &v }

func newTestService(t *testing.T, gen *stubGenerator, timeout time.Duration) *Service {
	t.Helper()
	svc := NewService(gen, timeout, zaptest.NewLogger(t))
	svc.now = func() time.Time { return fixedTime }
	return svc
}

func TestRespondSuccess(t *testing.T) {
	gen := &stubGenerator{text: "right!"}
	svc := newTestService(t, gen, time.Second)

	before := testutil.ToFloat64(metrics.MovementsTotal.WithLabelValues(string(movement.Right)))

	resp, err := svc.Respond(context.Background(), model.GenerateRequest{
		Prompt:        "Please look right",
		RobotID:       "robot-1",
		ServoPosition: intPtr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Please look right", gen.gotPrompt)
	assert.Equal(t, 30, gen.gotServo)

	assert.Equal(t, "robot-1", resp.RobotID)
	assert.Equal(t, fixedTime.UnixMilli(), resp.Timestamp)
	assert.Equal(t, lookRightText, resp.Response.Text)
	assert.Equal(t, intent.Movement, resp.Response.Type)
	assert.Equal(t, emotion.Excited, resp.Response.Emotion)
	assert.Equal(t, movement.Right, resp.Movement.Direction)
	assert.Equal(t, 180, resp.Movement.Angle)
	assert.Equal(t, 30, resp.CurrentServoPosition)

	after := testutil.ToFloat64(metrics.MovementsTotal.WithLabelValues(string(movement.Right)))
	assert.Equal(t, before+1, after)
	assert.Equal(t, "stub", svc.Provider())
}

func TestRespondDefaultsServoPosition(t *testing.T) {
	gen := &stubGenerator{text: "I am a friendly robot."}
	svc := newTestService(t, gen, time.Second)

	resp, err := svc.Respond(context.Background(), model.GenerateRequest{Prompt: "Who are you?", RobotID: "r"})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultServoPosition, gen.gotServo)
	assert.Equal(t, 90, resp.CurrentServoPosition)
	assert.True(t, resp.Conversation.IsPersonal)
	assert.True(t, resp.Conversation.RequiresMovement)
}

func TestRespondInvalidInputSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	svc := newTestService(t, gen, time.Second)

	for _, req := range []model.GenerateRequest{
		{RobotID: "r"},
		{Prompt: "hello"},
		{},
	} {
		_, err := svc.Respond(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, KindInvalidInput, KindOf(err))
		assert.Equal(t, MessageInvalidInput, PublicMessage(err))
	}
	assert.Zero(t, gen.calls)
}

func TestRespondUpstreamFailure(t *testing.T) {
	cause := errors.New("gemini generate content: 503 unavailable")
	gen := &stubGenerator{err: cause}
	svc := newTestService(t, gen, time.Second)

	resp, err := svc.Respond(context.Background(), model.GenerateRequest{Prompt: "hi", RobotID: "r"})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamFailure, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, model.Response{}, resp)
	assert.Equal(t, 1, gen.calls, "no retries")
}

func TestRespondTimesOut(t *testing.T) {
	gen := &stubGenerator{block: true}
	svc := newTestService(t, gen, 20*time.Millisecond)

	_, err := svc.Respond(context.Background(), model.GenerateRequest{Prompt: "hi", RobotID: "r"})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamFailure, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRespondHonoursCallerCancellation(t *testing.T) {
	gen := &stubGenerator{block: true}
	svc := newTestService(t, gen, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Respond(ctx, model.GenerateRequest{Prompt: "hi", RobotID: "r"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
