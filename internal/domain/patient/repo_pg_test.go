package patient

import "testing"

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain text untouched", "Maria", "Maria"},
		{"percent escaped", "10%", `10\%`},
		{"underscore escaped", "ana_s", `ana\_s`},
		{"backslash escaped first", `a\%`, `a\\\%`},
		{"mixed", `_%\`, `\_\%\\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likeEscaper.Replace(tt.query); got != tt.want {
				t.Errorf("likeEscaper.Replace(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
