package request_models

// LocationOption is the destination the user picked from the geocoder:
// a display label plus coordinates when the lookup resolved them.
type LocationOption struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
}

// TripPreferences is the form payload a generation request is built from.
// It is immutable once submitted; missing optional fields get defaults at
// prompt-build time rather than here.
type TripPreferences struct {
	Location    LocationOption `json:"location"`
	NoOfDays    int            `json:"noOfDays"`
	Traveler    string         `json:"traveler"`
	Budget      string         `json:"budget"`
	TravelStyle string         `json:"travelStyle"`
	TripPace    string         `json:"tripPace"`
	Interests   []string       `json:"interests"`
	StayStyle   string         `json:"stayStyle"`
	Dining      []string       `json:"dining"`
	Mobility    string         `json:"mobility"`
	MustHave    string         `json:"mustHave"`
}

type GenerateTripRequest struct {
	Preferences TripPreferences `json:"preferences"`
	// SessionID debounces accidental double submissions from one UI session.
	// Falls back to the authenticated user when absent.
	SessionID string `json:"session_id,omitempty"`
}
