package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
// Now returns local time: all week math and day bucketing follow the
// machine's timezone.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
