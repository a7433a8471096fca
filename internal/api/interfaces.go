package api

import (
	"context"
	"time"

	"github.com/neexbeast/flight-lookup/internal/flight"
)

// FlightLookup resolves a flight number to a summary.
// Errors are flight.ErrNotFound or flight.ErrInternal.
type FlightLookup interface {
	Lookup(ctx context.Context, flightNumber string) (*flight.FlightSummary, error)
}

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}
