package identifier

import "context"

type CounterRepository interface {
	// NextSerial atomically increments and returns the serial for a year.
	// Concurrent calls each observe a distinct value.
	NextSerial(ctx context.Context, year int) (int, error)

	// CurrentSerial returns the last issued serial for a year without
	// consuming one. Years with no issuance yet report 0.
	CurrentSerial(ctx context.Context, year int) (int, error)
}
