package ports

import "time"

// Clock abstracts wall-clock access so added_date stamps are controllable
// in tests.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
