package flight

// mapFlight converts one upstream record into a FlightSummary.
// A required key that is absent, or whose parent object is absent or null,
// yields a *missingFieldError. A required key sent as null maps to null.
func mapFlight(f upstreamFlight) (*FlightSummary, error) {
	if f.Flight == nil {
		return nil, &missingFieldError{path: "flight"}
	}
	number, err := required(f.Flight.IATA, "flight.iata")
	if err != nil {
		return nil, err
	}

	if f.Airline == nil {
		return nil, &missingFieldError{path: "airline"}
	}
	airline, err := required(f.Airline.Name, "airline.name")
	if err != nil {
		return nil, err
	}

	origin, start, err := mapEndpoint(f.Departure, "departure")
	if err != nil {
		return nil, err
	}
	destination, end, err := mapEndpoint(f.Arrival, "arrival")
	if err != nil {
		return nil, err
	}

	return &FlightSummary{
		FlightNumber: number,
		Airline:      airline,
		Origin:       origin,
		Destination:  destination,
		StartTime:    start,
		EndTime:      end,
		// Stopovers need full route data the provider does not expose.
		Stopovers: []string{},
	}, nil
}

// mapEndpoint maps a departure or arrival block and returns its scheduled time.
func mapEndpoint(e *upstreamEndpoint, prefix string) (AirportRef, *string, error) {
	if e == nil {
		return AirportRef{}, nil, &missingFieldError{path: prefix}
	}

	code, err := required(e.IATA, prefix+".iata")
	if err != nil {
		return AirportRef{}, nil, err
	}
	airport, err := required(e.Airport, prefix+".airport")
	if err != nil {
		return AirportRef{}, nil, err
	}
	tz, err := required(e.Timezone, prefix+".timezone")
	if err != nil {
		return AirportRef{}, nil, err
	}
	scheduled, err := required(e.Scheduled, prefix+".scheduled")
	if err != nil {
		return AirportRef{}, nil, err
	}

	return AirportRef{
		Code:      code,
		City:      airport,
		Timezone:  tz,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
	}, scheduled, nil
}

func required(f field[string], path string) (*string, error) {
	if !f.present {
		return nil, &missingFieldError{path: path}
	}
	return f.value, nil
}
