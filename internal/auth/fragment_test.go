package auth

import "testing"

func TestExtractFragment(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"well formed", "aaa.bbb.ccc", "ccc"},
		{"realistic token", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig-part", "sig-part"},
		{"empty string", "", ""},
		{"no dots", "justonepart", ""},
		{"two segments", "aaa.bbb", ""},
		{"four segments", "a.b.c.d", ""},
		{"empty first segment", ".bbb.ccc", ""},
		{"empty middle segment", "aaa..ccc", ""},
		{"empty last segment", "aaa.bbb.", ""},
		{"only dots", "..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFragment(tt.token); got != tt.want {
				t.Errorf("ExtractFragment(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
