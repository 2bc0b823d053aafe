package chamber

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		token string
		want  VisitorKind
	}{
		{"S", KindStudent},
		{"a", KindAdmin},
		{"o", KindOnline},
		{" O ", KindOnline},
		// Longer tokens fall back to their last letter.
		{"typeS", KindStudent},
		{"typeA", KindAdmin},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.token)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestParseKindErrors(t *testing.T) {
	for _, token := range []string{"", "X", "student", "SO?"} {
		if _, err := ParseKind(token); err == nil {
			t.Errorf("ParseKind(%q) succeeded, want error", token)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != PolicySameKindJoins {
		t.Errorf("ParsePolicy(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePolicy("strict-fifo"); err != nil || p != PolicyStrictFIFO {
		t.Errorf("ParsePolicy(strict-fifo) = %q, %v", p, err)
	}
	if _, err := ParsePolicy("round-robin"); err == nil {
		t.Error("ParsePolicy(round-robin) succeeded, want error")
	}
}
