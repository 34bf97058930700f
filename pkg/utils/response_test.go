package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondErrorWritesNullData(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondError(rec, http.StatusBadRequest, "INVALID_INPUT", "Prompt and robotId are required")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	want := `{"status":"error","code":"INVALID_INPUT","message":"Prompt and robotId are required","data":null}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", rec.Body.String(), want)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	env := Success("RESPONSE_GENERATED", "Response generated successfully", map[string]int{"angle": 180})

	if env.Status != StatusSuccess || env.Code != "RESPONSE_GENERATED" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.Data == nil {
		t.Fatalf("expected data to be set")
	}
}
