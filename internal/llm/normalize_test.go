package llm

import "testing"

func TestStripCodeFences(t *testing.T) {
	payload := `{"key": "value"}`

	tests := []struct {
		name  string
		input string
	}{
		{"bare", payload},
		{"surrounding whitespace", "  \n" + payload + "\n  "},
		{"plain fences", "```\n" + payload + "\n```"},
		{"json-tagged fences", "```json\n" + payload + "\n```"},
		{"leading fence only", "```json\n" + payload},
		{"trailing fence only", payload + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.input); got != payload {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.input, got, payload)
			}
		})
	}
}

func TestStripCodeFences_LeavesInteriorBackticksAlone(t *testing.T) {
	payload := `{"feedback": "use ` + "```code```" + ` blocks"}`

	if got := StripCodeFences(payload); got != payload {
		t.Errorf("interior backticks should be untouched, got %q", got)
	}
}
