package dashboard

import (
	"testing"
	"time"
)

func TestDefaultRange(t *testing.T) {
	now := time.Date(2024, 7, 15, 13, 45, 0, 0, time.UTC)
	start, end := DefaultRange(now)

	if got, want := start, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	if got, want := end, time.Date(2024, 7, 31, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Errorf("end = %v, want %v", got, want)
	}
	if !start.Before(now) || !end.After(now) {
		t.Errorf("range [%v, %v] does not contain now %v", start, end, now)
	}
}

func TestBucketLabel(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		bucket int
		want   string
	}{
		{0, "January 2024"},
		{1, "January 2024"}, // 30 days in, still January
		{2, "March 2024"},
		{6, "June 2024"},
	}
	for _, tt := range tests {
		if got := bucketLabel(start, tt.bucket); got != tt.want {
			t.Errorf("bucketLabel(bucket=%d) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}
