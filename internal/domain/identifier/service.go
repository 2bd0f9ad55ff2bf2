package identifier

import "context"

// Generator produces login IDs backed by the per-year counter.
type Generator interface {
	// Issue consumes the next serial for the year and returns the login ID
	Issue(ctx context.Context, firstName, lastName string, year int) (string, error)

	// Preview returns the login ID the next issuance would produce without
	// consuming a serial. Concurrent onboarding can still claim the serial
	// first, so the result is advisory
	Preview(ctx context.Context, firstName, lastName string, year int) (string, error)
}
