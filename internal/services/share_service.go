package services

import (
	"fmt"
	"net/url"
	"strings"

	"ankala/internal/models/request_models"
	"ankala/internal/models/response_models"
)

// BuildShareMessage renders the plain-text trip summary used for the
// prefilled messaging link. It tolerates empty itineraries and hotel lists;
// the canonical model guarantees the slices exist.
func BuildShareMessage(prefs request_models.TripPreferences, data response_models.TripData) string {
	var b strings.Builder

	destination := prefs.Location.Label
	if destination == "" {
		destination = orDefault(data.Destination, "N/A")
	}
	days := prefs.NoOfDays
	if days <= 0 {
		days = data.Days
	}

	b.WriteString("Hello! Based on the recommendations I just received on the Ankala travel planner, I'd like to explore this itinerary further:\n\n")
	fmt.Fprintf(&b, "📍 Destination: %s\n", destination)
	fmt.Fprintf(&b, "📅 Duration: %d days\n", days)
	fmt.Fprintf(&b, "👥 Travelers: %s\n\n", orDefault(prefs.Traveler, "N/A"))
	fmt.Fprintf(&b, "🏨 Hotels:\n%s\n\n", formatHotels(data.HotelOptions))
	fmt.Fprintf(&b, "📋 Itinerary (with estimated ticket costs):\n%s\n\n", formatItinerary(data.Itinerary))
	b.WriteString("Could you help me with the booking details and latest pricing?")

	return b.String()
}

func BuildWhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

func formatHotels(hotels []response_models.Hotel) string {
	if len(hotels) == 0 {
		return "No hotel data."
	}
	lines := make([]string, 0, len(hotels))
	for i, h := range hotels {
		lines = append(lines, fmt.Sprintf("%d. %s\n📍 %s\n💰 Estimated: %s\n⭐ %s",
			i+1,
			orDefault(h.Name, "-"),
			orDefault(h.Address, "-"),
			orDefault(h.Price, "N/A"),
			formatRating(h.Rating)))
	}
	return strings.Join(lines, "\n\n")
}

func formatItinerary(days []response_models.DayPlan) string {
	if len(days) == 0 {
		return "No itinerary."
	}
	sections := make([]string, 0, len(days))
	for i, day := range days {
		label := day.Day
		if label == "" {
			label = fmt.Sprintf("Day %d", i+1)
		}
		var acts []string
		for _, p := range day.Plan {
			acts = append(acts, fmt.Sprintf("🕒 %s\n📍 %s\n📄 %s\n🏷️ Estimated ticket: %s",
				orDefault(p.Time, "-"),
				orDefault(p.Place.Name, "-"),
				orDefault(p.Place.ShortDesc, "-"),
				orDefault(p.Place.TicketPricing, "N/A")))
		}
		sections = append(sections, fmt.Sprintf("📅 %s\n%s", label, strings.Join(acts, "\n\n")))
	}
	return strings.Join(sections, "\n\n---\n\n")
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "N/A"
	}
	return formatNumber(rating)
}
