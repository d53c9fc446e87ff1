package response_models

type TravelTip struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type TripTipsResponse struct {
	Tips       []TravelTip `json:"tips"`
	CarbonTips []TravelTip `json:"carbonTips"`
	// Source is "ai" when the completion service produced the tips and
	// "heuristic" when it failed and the itinerary-derived fallback was used.
	Source string `json:"source"`
}
