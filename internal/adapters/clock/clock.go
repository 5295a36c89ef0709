// Package clock implements the system clock adapter.
package clock

import (
	"time"

	"github.com/crackingshells/hatch-registry/internal/core/ports"
)

var _ ports.Clock = (*System)(nil)

// System implements ports.Clock with the wall clock.
type System struct{}

// New creates a new System clock.
func New() *System {
	return &System{}
}

// Now returns the current time.
func (*System) Now() time.Time {
	return time.Now()
}
