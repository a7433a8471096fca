package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/flight-lookup/internal/flight"
)

const (
	msgNotFound = "Flight not found"
	msgInternal = "Internal server error"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	flights FlightLookup
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(flights FlightLookup, log *slog.Logger) *Handlers {
	return &Handlers{flights: flights, log: log}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// GetFlight handles GET /api/flights/{flightNumber}.
// The lookup logs its own failures, so only unexpected errors are logged here.
func (h *Handlers) GetFlight(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "flightNumber")

	summary, err := h.flights.Lookup(r.Context(), number)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, summary)
	case errors.Is(err, flight.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, flight.ErrInternal):
		writeError(w, http.StatusInternalServerError, msgInternal)
	default:
		h.log.Error("unexpected lookup error", "flight_number", number, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// Health handles GET /api/health. It reports liveness only and never
// touches the upstream, which is metered.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
