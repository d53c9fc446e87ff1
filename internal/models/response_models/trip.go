package response_models

// TripData is the canonical normalized itinerary, independent of which
// upstream response shape produced it. Itinerary, HotelOptions and both tips
// slices are always non-nil so consumers can iterate unconditionally.
type TripData struct {
	Destination   string    `json:"destination"`
	Days          int       `json:"days"`
	Currency      string    `json:"currency"`
	Itinerary     []DayPlan `json:"itinerary"`
	HotelOptions  []Hotel   `json:"hotelOptions"`
	TipsGeneral   []string  `json:"tipsGeneral"`
	TipsLowImpact []string  `json:"tipsLowImpact"`
	Notes         string    `json:"notes,omitempty"`
}

type DayPlan struct {
	Day     string          `json:"day"`
	Summary string          `json:"summary,omitempty"`
	Plan    []ActivityBlock `json:"plan"`
}

type ActivityBlock struct {
	Time            string          `json:"time"`
	Place           Place           `json:"place"`
	MealSuggestion  *MealSuggestion `json:"mealSuggestion,omitempty"`
	PlanB           string          `json:"planB,omitempty"`
	RainAlternative string          `json:"rainAlternative,omitempty"`
}

type Place struct {
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	ShortDesc string  `json:"shortDesc,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lon       float64 `json:"lon,omitempty"`
	EstTicket float64 `json:"estTicket,omitempty"`
	// TicketPricing is the display form: "$12" when est_ticket was numeric,
	// the "N/A" sentinel otherwise.
	TicketPricing    string  `json:"ticketPricing"`
	Rating           float64 `json:"rating,omitempty"`
	TravelMode       string  `json:"travelMode,omitempty"`
	EstTravelMinutes int     `json:"estTravelMinutes,omitempty"`
}

type MealSuggestion struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type Hotel struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat,omitempty"`
	Lon           float64 `json:"lon,omitempty"`
	PricePerNight float64 `json:"pricePerNight,omitempty"`
	// Price is the display form: "$120/night" or "N/A".
	Price   string  `json:"price"`
	Rating  float64 `json:"rating"`
	WhyPick string  `json:"whyPick,omitempty"`
}

// TripResponse is what trip endpoints return: the stored record shape.
type TripResponse struct {
	ID            string      `json:"id"`
	UserEmail     string      `json:"userEmail"`
	UserSelection interface{} `json:"userSelection"`
	TripData      TripData    `json:"tripData"`
	CreatedAt     int64       `json:"createdAt"`
}
