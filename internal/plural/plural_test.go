package plural

import "testing"

func TestNPlurals(t *testing.T) {
	tests := []struct {
		lang  string
		want  int
		known bool
	}{
		{"en", 2, true},
		{"en-US", 2, true},
		{"en_GB", 2, true},
		{"es", 2, true},
		{"fr", 2, true},
		{"ja", 1, true},
		{"zh-CN", 1, true},
		{"ru", 3, true},
		{"pl", 3, true},
		{"cs", 3, true},
		{"ar", 6, true},
		{"ga", 5, true},
		{"cy", 4, true},
		{"pt-BR", 2, true},
		{"tlh", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, known := NPlurals(tt.lang)
		if got != tt.want || known != tt.known {
			t.Errorf("NPlurals(%q) = %d, %v, want %d, %v", tt.lang, got, known, tt.want, tt.known)
		}
	}
}
