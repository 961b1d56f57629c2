package persona

import "time"

// BucketOf maps a timestamp's UTC hour to its activity bucket using
// closed-open intervals: [5,12) morning, [12,17) afternoon, [17,22)
// evening, everything else night.
//
// A timestamp carrying only a date (zero clock) lands in night, since
// midnight is a night hour. Full created_utc precision from the API
// avoids that degeneracy in practice.
func BucketOf(t time.Time) TimeBucket {
	h := t.UTC().Hour()
	switch {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 22:
		return Evening
	default:
		return Night
	}
}
