package handler

import "testing"

func TestAccountParam(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantID      int64
		wantPresent bool
		wantErr     bool
	}{
		{name: "missing means all accounts", raw: "", wantID: 0, wantPresent: false},
		{name: "zero is still one account", raw: "0", wantID: 0, wantPresent: true},
		{name: "plain id", raw: "4711", wantID: 4711, wantPresent: true},
		{name: "garbage rejected", raw: "abc", wantErr: true},
		{name: "trailing junk rejected", raw: "12x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, present, err := accountParam(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("accountParam(%q) expected error, got id=%d present=%v", tt.raw, id, present)
				}
				return
			}
			if err != nil {
				t.Fatalf("accountParam(%q): %v", tt.raw, err)
			}
			if id != tt.wantID || present != tt.wantPresent {
				t.Errorf("accountParam(%q) = (%d, %v), want (%d, %v)",
					tt.raw, id, present, tt.wantID, tt.wantPresent)
			}
		})
	}
}
