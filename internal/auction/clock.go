package auction

import "time"

// Clock supplies wall-clock time. The service reads it once per request so
// every time comparison in a flow sees the same instant, which keeps the
// anti-snipe boundary deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func SystemClock() Clock { return systemClock{} }
