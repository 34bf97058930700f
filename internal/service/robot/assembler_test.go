package robot

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/zhouzirui/servo-bot/backend/internal/analysis/emotion"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/intent"
	"github.com/zhouzirui/servo-bot/backend/internal/analysis/movement"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestElaborate(t *testing.T) {
	cases := map[string]string{
		"right":            lookRightText,
		" Right! ":         lookRightText,
		"RIGHT":            lookRightText,
		"left!":            lookLeftText,
		"\tLeft\n":         lookLeftText,
		"right away":       "right away",
		"left, then right": "left, then right",
		"":                 "",
	}
	for in, want := range cases {
		if got := Elaborate(in); got != want {
			t.Fatalf("Elaborate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInterpretIdentityExample(t *testing.T) {
	got := Interpret("robot-7", model.DefaultServoPosition, "Who are you?", "I am a friendly robot.", fixedTime)

	want := model.Response{
		RobotID:   "robot-7",
		Timestamp: fixedTime.UnixMilli(),
		Response: model.Utterance{
			Text:    "I am a friendly robot.",
			Type:    intent.Identity,
			Emotion: emotion.Neutral,
		},
		Movement: movement.Still,
		Conversation: model.Conversation{
			QuestionType:     intent.Identity,
			IsPersonal:       true,
			RequiresMovement: true,
		},
		CurrentServoPosition: 90,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Interpret() mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretLookRightExample(t *testing.T) {
	got := Interpret("robot-1", 45, "Please look right", "Sure, turning right now!", fixedTime)

	wantMovement := movement.Directive{Direction: movement.Right, Angle: 180, Reason: "looking right as requested"}
	if diff := cmp.Diff(wantMovement, got.Movement); diff != "" {
		t.Fatalf("movement mismatch (-want +got):\n%s", diff)
	}
	if got.Response.Type != intent.Movement {
		t.Fatalf("expected MOVEMENT, got %s", got.Response.Type)
	}
	if got.Response.Emotion != emotion.Excited {
		t.Fatalf("expected excited, got %s", got.Response.Emotion)
	}
	if got.Conversation.IsPersonal || !got.Conversation.RequiresMovement {
		t.Fatalf("unexpected conversation metadata: %+v", got.Conversation)
	}
	if got.CurrentServoPosition != 45 {
		t.Fatalf("expected servo position echoed, got %d", got.CurrentServoPosition)
	}
}

func TestInterpretElaboratesBeforeTagging(t *testing.T) {
	got := Interpret("robot-1", 90, "Where should you look?", " Right ", fixedTime)

	if got.Response.Text != lookRightText {
		t.Fatalf("expected elaborated text, got %q", got.Response.Text)
	}
	if got.Response.Emotion != emotion.Excited {
		t.Fatalf("emotion must reflect elaborated text, got %s", got.Response.Emotion)
	}
	if got.Movement.Direction != movement.Right {
		t.Fatalf("expected right movement, got %+v", got.Movement)
	}
}

func TestInterpretApologeticExample(t *testing.T) {
	got := Interpret("robot-1", 90, "Can you fly?", "I'm sorry, I cannot help with that.", fixedTime)
	if got.Response.Emotion != emotion.Apologetic {
		t.Fatalf("expected apologetic, got %s", got.Response.Emotion)
	}
	if got.Response.Type != intent.Capability || got.Conversation.RequiresMovement {
		t.Fatalf("unexpected classification: %+v", got.Conversation)
	}
}

func TestInterpretIsDeterministic(t *testing.T) {
	a := Interpret("r", 10, "look left", "Okay!", fixedTime)
	b := Interpret("r", 10, "look left", "Okay!", fixedTime)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("expected identical responses:\n%s", diff)
	}
}
