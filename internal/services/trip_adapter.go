package services

import (
	"encoding/json"
	"strconv"

	"ankala/internal/models/response_models"
	"ankala/pkg/utils"
)

// AdaptTripData reconciles every response shape the model has been observed
// to return into the canonical trip view model. It is pure and idempotent:
// already-canonical input passes through unchanged. Missing sections degrade
// to empty slices, never nil, so consumers iterate unconditionally. Only a
// payload exposing none of the recognized shapes errors out.
func AdaptTripData(parsed map[string]any) (response_models.TripData, error) {
	if parsed == nil {
		return emptyTripData(), utils.ErrAdaptation
	}

	if _, ok := parsed["hotelOptions"]; ok {
		return adaptCanonical(parsed)
	}
	if _, ok := parsed["itineraries"]; ok {
		return adaptMultiItinerary(parsed), nil
	}
	if _, ok := parsed["hotel_suggestions"]; ok {
		return adaptMultiItinerary(parsed), nil
	}
	_, hasLegacyHotels := parsed["hotel_options"]
	_, hasLegacyDays := parsed["itinerary"]
	if hasLegacyHotels || hasLegacyDays {
		return adaptLegacy(parsed), nil
	}

	return emptyTripData(), utils.ErrAdaptation
}

func emptyTripData() response_models.TripData {
	return response_models.TripData{
		Itinerary:     []response_models.DayPlan{},
		HotelOptions:  []response_models.Hotel{},
		TipsGeneral:   []string{},
		TipsLowImpact: []string{},
	}
}

// adaptCanonical round-trips the map through the typed model. Unknown keys
// drop; everything canonical survives as-is, which gives idempotence.
func adaptCanonical(parsed map[string]any) (response_models.TripData, error) {
	raw, err := json.Marshal(parsed)
	if err != nil {
		return emptyTripData(), utils.ErrAdaptation
	}
	out := emptyTripData()
	if err := json.Unmarshal(raw, &out); err != nil {
		return emptyTripData(), utils.ErrAdaptation
	}
	ensureNonNil(&out)
	return out, nil
}

// adaptMultiItinerary handles the current model output: three style-tagged
// itinerary variants plus a hotel-suggestion list. The variant tagged
// "balanced" becomes the canonical itinerary; when absent the first variant
// is the defined fallback.
func adaptMultiItinerary(parsed map[string]any) response_models.TripData {
	out := emptyTripData()
	out.Destination = str(parsed, "destination")
	out.Days = int(num(parsed, "days"))
	out.Currency = str(parsed, "currency")
	if out.Currency == "" {
		out.Currency = "USD"
	}
	out.Notes = str(parsed, "notes")

	variants := slice(parsed, "itineraries")
	chosen := pickVariant(variants)
	if chosen != nil {
		for _, d := range slice(chosen, "daily") {
			day, ok := d.(map[string]any)
			if !ok {
				continue
			}
			plan := response_models.DayPlan{
				Summary: str(day, "summary"),
				Plan:    []response_models.ActivityBlock{},
			}
			if n := num(day, "day"); n > 0 {
				plan.Day = "Day " + strconv.Itoa(int(n))
			}
			for _, b := range slice(day, "blocks") {
				block, ok := b.(map[string]any)
				if !ok {
					continue
				}
				plan.Plan = append(plan.Plan, adaptBlock(block))
			}
			out.Itinerary = append(out.Itinerary, plan)
		}
	}

	for _, h := range slice(parsed, "hotel_suggestions") {
		hotel, ok := h.(map[string]any)
		if !ok {
			continue
		}
		out.HotelOptions = append(out.HotelOptions, adaptHotel(hotel))
	}

	out.TipsGeneral = stringSlice(parsed, "tips_general")
	out.TipsLowImpact = stringSlice(parsed, "tips_low_impact")
	return out
}

func pickVariant(variants []any) map[string]any {
	var first map[string]any
	for _, v := range variants {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if first == nil {
			first = m
		}
		if str(m, "style") == "balanced" {
			return m
		}
	}
	return first
}

func adaptBlock(block map[string]any) response_models.ActivityBlock {
	out := response_models.ActivityBlock{
		Time:            str(block, "start_end"),
		PlanB:           str(block, "plan_b"),
		RainAlternative: str(block, "rain_alternative"),
	}

	if place, ok := block["place"].(map[string]any); ok {
		out.Place = response_models.Place{
			Name:             str(place, "name"),
			Category:         str(place, "category"),
			ShortDesc:        str(place, "short_desc"),
			Lat:              num(place, "lat"),
			Lon:              num(place, "lon"),
			Rating:           num(place, "rating"),
			TravelMode:       str(place, "travel_mode"),
			EstTravelMinutes: int(num(place, "est_travel_minutes")),
			TicketPricing:    "N/A",
		}
		if ticket, ok := place["est_ticket"].(float64); ok {
			out.Place.EstTicket = ticket
			out.Place.TicketPricing = "$" + formatNumber(ticket)
		}
	} else {
		out.Place.TicketPricing = "N/A"
	}

	if meal, ok := block["meal_suggestion"].(map[string]any); ok {
		out.MealSuggestion = &response_models.MealSuggestion{
			Name:       str(meal, "name"),
			Type:       str(meal, "type"),
			PriceRange: str(meal, "price_range"),
			Notes:      str(meal, "notes"),
		}
	}
	return out
}

func adaptHotel(hotel map[string]any) response_models.Hotel {
	out := response_models.Hotel{
		Name:    str(hotel, "name"),
		Address: str(hotel, "address"),
		Lat:     num(hotel, "lat"),
		Lon:     num(hotel, "lon"),
		Rating:  num(hotel, "rating"),
		WhyPick: str(hotel, "why_pick"),
		Price:   "N/A",
	}
	if rate, ok := hotel["price_per_night_usd"].(float64); ok {
		out.PricePerNight = rate
		out.Price = "$" + formatNumber(rate) + "/night"
	}
	return out
}

// adaptLegacy maps records saved by the earliest prompt revision, where the
// trip was already a flat view model and a plan item's "place" was a bare
// name string.
func adaptLegacy(parsed map[string]any) response_models.TripData {
	out := emptyTripData()
	out.Destination = str(parsed, "destination")
	out.Days = int(num(parsed, "days"))
	out.Currency = str(parsed, "currency")
	if out.Currency == "" {
		out.Currency = "USD"
	}

	for _, d := range slice(parsed, "itinerary") {
		day, ok := d.(map[string]any)
		if !ok {
			continue
		}
		plan := response_models.DayPlan{
			Day:  str(day, "day"),
			Plan: []response_models.ActivityBlock{},
		}
		for _, p := range slice(day, "plan") {
			item, ok := p.(map[string]any)
			if !ok {
				continue
			}
			block := response_models.ActivityBlock{
				Time:            str(item, "time"),
				PlanB:           str(item, "plan_b"),
				RainAlternative: str(item, "rain_alternative"),
				Place: response_models.Place{
					Lat:              num(item, "lat"),
					Lon:              num(item, "lon"),
					Rating:           num(item, "rating"),
					TravelMode:       str(item, "travel_mode"),
					EstTravelMinutes: int(num(item, "est_travel_minutes")),
					ShortDesc:        str(item, "details"),
					TicketPricing:    "N/A",
				},
			}
			switch pl := item["place"].(type) {
			case string:
				block.Place.Name = pl
			case map[string]any:
				block.Place.Name = str(pl, "name")
				block.Place.Category = str(pl, "category")
			}
			if tp := str(item, "ticket_pricing"); tp != "" {
				block.Place.TicketPricing = tp
			}
			plan.Plan = append(plan.Plan, block)
		}
		out.Itinerary = append(out.Itinerary, plan)
	}

	for _, h := range slice(parsed, "hotel_options") {
		hotel, ok := h.(map[string]any)
		if !ok {
			continue
		}
		entry := response_models.Hotel{
			Name:    str(hotel, "name"),
			Address: str(hotel, "address"),
			Rating:  num(hotel, "rating"),
			WhyPick: str(hotel, "description"),
			Price:   "N/A",
		}
		if p := str(hotel, "price"); p != "" {
			entry.Price = p
		}
		out.HotelOptions = append(out.HotelOptions, entry)
	}

	out.TipsGeneral = stringSlice(parsed, "tips_general")
	out.TipsLowImpact = stringSlice(parsed, "tips_low_impact")
	return out
}

func ensureNonNil(td *response_models.TripData) {
	if td.Itinerary == nil {
		td.Itinerary = []response_models.DayPlan{}
	}
	if td.HotelOptions == nil {
		td.HotelOptions = []response_models.Hotel{}
	}
	if td.TipsGeneral == nil {
		td.TipsGeneral = []string{}
	}
	if td.TipsLowImpact == nil {
		td.TipsLowImpact = []string{}
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]any, key string) float64 {
	n, _ := m[key].(float64)
	return n
}

func slice(m map[string]any, key string) []any {
	s, _ := m[key].([]any)
	return s
}

func stringSlice(m map[string]any, key string) []string {
	out := []string{}
	for _, v := range slice(m, key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
