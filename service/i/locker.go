package i

import "context"

// Locker provides named distributed locks.
type Locker interface {
	// Acquire takes the named lock and returns a release function.
	Acquire(ctx context.Context, name string) (release func() error, err error)
}
