package flight

// mockFlights maps reserved uppercase identifiers to fixture constructors.
// Each call builds a fresh value so callers never share a fixture.
var mockFlights = map[string]func() *FlightSummary{
	"TEST1": mockTest1,
	"TEST2": mockTest2,
}

// mockFlight returns the fixture for an already-uppercased identifier.
func mockFlight(upper string) (*FlightSummary, bool) {
	build, ok := mockFlights[upper]
	if !ok {
		return nil, false
	}
	return build(), true
}

func mockTest1() *FlightSummary {
	return &FlightSummary{
		FlightNumber: stringPtr("TEST1"),
		Airline:      stringPtr("Test Airways"),
		Origin: AirportRef{
			Code:      stringPtr("JFK"),
			City:      stringPtr("New York"),
			Timezone:  stringPtr("America/New_York"),
			Latitude:  float64Ptr(40.6413),
			Longitude: float64Ptr(-73.7781),
		},
		Destination: AirportRef{
			Code:      stringPtr("LHR"),
			City:      stringPtr("London"),
			Timezone:  stringPtr("Europe/London"),
			Latitude:  float64Ptr(51.4700),
			Longitude: float64Ptr(-0.4543),
		},
		StartTime: stringPtr("2023-10-27T10:00:00+00:00"),
		EndTime:   stringPtr("2023-10-27T22:00:00+00:00"),
		Stopovers: []string{},
	}
}

func mockTest2() *FlightSummary {
	return &FlightSummary{
		FlightNumber: stringPtr("TEST2"),
		Airline:      stringPtr("Demo Airlines"),
		Origin: AirportRef{
			Code:      stringPtr("HND"),
			City:      stringPtr("Tokyo"),
			Timezone:  stringPtr("Asia/Tokyo"),
			Latitude:  float64Ptr(35.5494),
			Longitude: float64Ptr(139.7798),
		},
		Destination: AirportRef{
			Code:      stringPtr("CDG"),
			City:      stringPtr("Paris"),
			Timezone:  stringPtr("Europe/Paris"),
			Latitude:  float64Ptr(49.0097),
			Longitude: float64Ptr(2.5479),
		},
		StartTime: stringPtr("2023-10-28T08:00:00+00:00"),
		EndTime:   stringPtr("2023-10-28T20:00:00+00:00"),
		Stopovers: []string{"DXB"},
	}
}

func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }
