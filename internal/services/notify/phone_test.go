package notify

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"international prefix dropped", "00218912345678", "218912345678"},
		{"local trunk rewritten", "0912345678", "218912345678"},
		{"already international", "218912345678", "218912345678"},
		{"separators stripped", "091-234 56.78", "218912345678"},
		{"plus sign stripped", "+218912345678", "218912345678"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.phone, "218"); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}
