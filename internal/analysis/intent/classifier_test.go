package intent

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		prompt string
		want   Category
	}{
		{"Who are you?", Identity},
		{"WHAT IS YOUR NAME", Identity},
		{"Who are you and what is this place?", Identity},
		{"Who is the president?", Information},
		{"what is a servo", Information},
		{"Can you dance?", Capability},
		{"Could you look left", Capability},
		{"Please look right", Movement},
		{"turn around", Movement},
		{"Hello there", General},
		{"", General},
	}

	for _, tc := range cases {
		if got := Classify(tc.prompt); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.prompt, got, tc.want)
		}
	}
}

func TestClassifyIdentityPrecedence(t *testing.T) {
	prompts := []string{
		"who are you",
		"Who Are You? what is it, can you look and turn?",
		"tell me, WHO ARE YOU, who is he",
	}
	for _, p := range prompts {
		if got := Classify(p); got != Identity {
			t.Fatalf("expected IDENTITY for %q, got %s", p, got)
		}
	}
}

func TestCategoryFlags(t *testing.T) {
	if !Identity.IsPersonal() {
		t.Fatal("expected IDENTITY to be personal")
	}
	if Movement.IsPersonal() {
		t.Fatal("expected MOVEMENT not to be personal")
	}

	for _, c := range []Category{Movement, Identity} {
		if !c.RequiresMovement() {
			t.Fatalf("expected %s to require movement", c)
		}
	}
	for _, c := range []Category{Information, Capability, General} {
		if c.RequiresMovement() {
			t.Fatalf("expected %s not to require movement", c)
		}
	}
}
