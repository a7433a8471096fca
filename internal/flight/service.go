package flight

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Lookup outcomes reported to a Recorder.
const (
	OutcomeMock     = "mock"
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// fetcher is the interface satisfied by Client.
type fetcher interface {
	fetch(ctx context.Context, flightIATA string) ([]upstreamFlight, error)
}

// Recorder receives lookup and upstream call observations.
type Recorder interface {
	RecordLookup(outcome string)
	RecordUpstream(duration time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) RecordLookup(string)                 {}
func (noopRecorder) RecordUpstream(time.Duration, error) {}

// Service resolves flight numbers to FlightSummary records.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	upstream fetcher
	rec      Recorder
	log      *slog.Logger
}

// NewService constructs a Service backed by client. rec may be nil.
func NewService(client *Client, rec Recorder, log *slog.Logger) *Service {
	return newService(client, rec, log)
}

func newService(f fetcher, rec Recorder, log *slog.Logger) *Service {
	if rec == nil {
		rec = noopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{upstream: f, rec: rec, log: log}
}

// Lookup returns the summary for flightNumber.
//
// Reserved mock identifiers are matched case-insensitively and never reach the
// upstream. Everything else is forwarded with its original casing and the first
// upstream match wins. Errors are ErrNotFound or ErrInternal; the cause of an
// internal error is logged, not returned.
func (s *Service) Lookup(ctx context.Context, flightNumber string) (*FlightSummary, error) {
	if mock, ok := mockFlight(strings.ToUpper(flightNumber)); ok {
		s.rec.RecordLookup(OutcomeMock)
		return mock, nil
	}

	start := time.Now()
	flights, err := s.upstream.fetch(ctx, flightNumber)
	s.rec.RecordUpstream(time.Since(start), err)
	if err != nil {
		return nil, s.internal(flightNumber, err)
	}

	// data absent, null or empty
	if len(flights) == 0 {
		s.rec.RecordLookup(OutcomeNotFound)
		return nil, ErrNotFound
	}

	summary, err := mapFlight(flights[0])
	if err != nil {
		return nil, s.internal(flightNumber, err)
	}

	s.rec.RecordLookup(OutcomeFound)
	return summary, nil
}

func (s *Service) internal(flightNumber string, cause error) error {
	s.log.Error("error fetching flight data", "flight_number", flightNumber, "err", cause)
	s.rec.RecordLookup(OutcomeError)
	return ErrInternal
}

