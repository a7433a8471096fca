package flight

import (
	"bytes"
	"encoding/json"
)

// AirportRef describes one end of a flight.
// City carries the provider's airport name, which is not always a city.
// String fields are nil when the provider sent them as null.
type AirportRef struct {
	Code      *string  `json:"code"`
	City      *string  `json:"city"`
	Timezone  *string  `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FlightSummary is the normalized flight record returned to callers.
type FlightSummary struct {
	FlightNumber *string    `json:"flight_number"`
	Airline      *string    `json:"airline"`
	Origin       AirportRef `json:"origin"`
	Destination  AirportRef `json:"destination"`
	StartTime    *string    `json:"start_time"`
	EndTime      *string    `json:"end_time"`
	Stopovers    []string   `json:"stopovers"`
}

// ---- upstream payload ----

// upstreamResponse is the envelope returned by the flights endpoint.
// Data is nil when the key is absent or null.
type upstreamResponse struct {
	Data  []upstreamFlight `json:"data"`
	Error *UpstreamError   `json:"error"`
}

type upstreamFlight struct {
	Flight *struct {
		IATA field[string] `json:"iata"`
	} `json:"flight"`
	Airline *struct {
		Name field[string] `json:"name"`
	} `json:"airline"`
	Departure *upstreamEndpoint `json:"departure"`
	Arrival   *upstreamEndpoint `json:"arrival"`
}

type upstreamEndpoint struct {
	IATA      field[string] `json:"iata"`
	Airport   field[string] `json:"airport"`
	Timezone  field[string] `json:"timezone"`
	Scheduled field[string] `json:"scheduled"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
}

// field tells an absent key (present false) from an explicit null
// (present true, value nil).
type field[T any] struct {
	present bool
	value   *T
}

func (f *field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}
