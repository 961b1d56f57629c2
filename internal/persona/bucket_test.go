package persona

import (
	"testing"
	"time"
)

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want TimeBucket
	}{
		{0, Night},
		{4, Night},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{21, Evening},
		{22, Night},
		{23, Night},
	}
	for _, tc := range cases {
		ts := time.Date(2024, 6, 1, tc.hour, 30, 0, 0, time.UTC)
		if got := BucketOf(ts); got != tc.want {
			t.Errorf("BucketOf(hour=%d) = %s, want %s", tc.hour, got, tc.want)
		}
	}
}

func TestBucketDateOnlyTimestamp(t *testing.T) {
	// A date-only timestamp carries a zero clock and always lands in night.
	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := BucketOf(ts); got != Night {
		t.Errorf("BucketOf(midnight) = %s, want %s", got, Night)
	}
}
