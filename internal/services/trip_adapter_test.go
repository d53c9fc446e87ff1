package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankala/internal/models/response_models"
	"ankala/pkg/utils"
)

func mustDecode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

const multiItineraryPayload = `{
	"destination": "Hoi An, Vietnam",
	"days": 2,
	"currency": "USD",
	"itineraries": [
		{
			"style": "packed",
			"overview": "Non-stop sightseeing.",
			"daily": [{"day": 1, "summary": "packed day", "blocks": []}]
		},
		{
			"style": "balanced",
			"overview": "A bit of everything.",
			"daily": [
				{
					"day": 1,
					"summary": "Old town wander",
					"blocks": [
						{
							"start_end": "08:00-10:30",
							"place": {
								"name": "Japanese Covered Bridge",
								"category": "landmark",
								"short_desc": "Iconic 18th-century bridge.",
								"lat": 15.877,
								"lon": 108.326,
								"est_ticket": 3.5,
								"rating": 4.5,
								"travel_mode": "walk",
								"est_travel_minutes": 10
							},
							"meal_suggestion": {
								"name": "Banh Mi Phuong",
								"type": "breakfast",
								"price_range": "$",
								"notes": "Go early."
							},
							"plan_b": "Hoi An Museum",
							"rain_alternative": "Cafe by the river"
						},
						{
							"start_end": "11:00-12:30",
							"place": {
								"name": "An Bang Beach",
								"category": "nature",
								"short_desc": "Laid-back sand.",
								"lat": 15.91,
								"lon": 108.34,
								"rating": 4.2,
								"travel_mode": "bicycle",
								"est_travel_minutes": 20
							},
							"plan_b": "Tra Que Village",
							"rain_alternative": "Cooking class"
						}
					]
				}
			]
		},
		{
			"style": "relaxed",
			"overview": "Slow mornings.",
			"daily": [{"day": 1, "summary": "relaxed day", "blocks": []}]
		}
	],
	"hotel_suggestions": [
		{
			"name": "Riverside Boutique",
			"address": "1 Bach Dang",
			"lat": 15.876,
			"lon": 108.33,
			"price_per_night_usd": 85,
			"rating": 4.6,
			"why_pick": "Steps from the lantern market."
		},
		{
			"name": "Homestay Garden",
			"address": "22 Cam Chau",
			"rating": 4.1,
			"why_pick": "Family-run."
		}
	],
	"tips_general": ["Carry small bills."],
	"tips_low_impact": ["Rent a bicycle instead of a taxi."],
	"notes": "Lantern festival on the 14th lunar day."
}`

func TestAdaptTripData_MultiItinerary(t *testing.T) {
	got, err := AdaptTripData(mustDecode(t, multiItineraryPayload))
	require.NoError(t, err)

	assert.Equal(t, "Hoi An, Vietnam", got.Destination)
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "Lantern festival on the 14th lunar day.", got.Notes)

	require.Len(t, got.Itinerary, 1)
	day := got.Itinerary[0]
	assert.Equal(t, "Day 1", day.Day)
	assert.Equal(t, "Old town wander", day.Summary, "the balanced variant must win regardless of position")

	require.Len(t, day.Plan, 2)
	first := day.Plan[0]
	assert.Equal(t, "08:00-10:30", first.Time)
	assert.Equal(t, "Japanese Covered Bridge", first.Place.Name)
	assert.Equal(t, 3.5, first.Place.EstTicket)
	assert.Equal(t, "$3.5", first.Place.TicketPricing)
	require.NotNil(t, first.MealSuggestion)
	assert.Equal(t, "Banh Mi Phuong", first.MealSuggestion.Name)

	second := day.Plan[1]
	assert.Equal(t, "N/A", second.Place.TicketPricing, "missing ticket price must degrade to the sentinel")
	assert.Zero(t, second.Place.EstTicket)

	require.Len(t, got.HotelOptions, 2)
	assert.Equal(t, "$85/night", got.HotelOptions[0].Price)
	assert.Equal(t, 85.0, got.HotelOptions[0].PricePerNight)
	assert.Equal(t, "N/A", got.HotelOptions[1].Price)

	assert.Equal(t, []string{"Carry small bills."}, got.TipsGeneral)
	assert.Equal(t, []string{"Rent a bicycle instead of a taxi."}, got.TipsLowImpact)
}

func TestAdaptTripData_FallsBackToFirstVariant(t *testing.T) {
	parsed := mustDecode(t, `{
		"destination": "Chiang Mai, Thailand",
		"days": 1,
		"itineraries": [
			{"style": "packed", "daily": [{"day": 1, "summary": "packed wins", "blocks": []}]},
			{"style": "relaxed", "daily": [{"day": 1, "summary": "relaxed loses", "blocks": []}]}
		],
		"hotel_suggestions": []
	}`)

	got, err := AdaptTripData(parsed)
	require.NoError(t, err)
	require.Len(t, got.Itinerary, 1)
	assert.Equal(t, "packed wins", got.Itinerary[0].Summary)
}

func TestAdaptTripData_MissingSectionsStayEmptyNotNil(t *testing.T) {
	parsed := mustDecode(t, `{"destination": "Phuket, Thailand", "days": 1, "itineraries": []}`)

	got, err := AdaptTripData(parsed)
	require.NoError(t, err)
	assert.NotNil(t, got.HotelOptions)
	assert.Empty(t, got.HotelOptions)
	assert.NotNil(t, got.Itinerary)
	assert.NotNil(t, got.TipsGeneral)
	assert.NotNil(t, got.TipsLowImpact)
	assert.Equal(t, "USD", got.Currency, "currency defaults when absent")
}

func TestAdaptTripData_Idempotent(t *testing.T) {
	once, err := AdaptTripData(mustDecode(t, multiItineraryPayload))
	require.NoError(t, err)

	raw, err := json.Marshal(once)
	require.NoError(t, err)
	twice, err := AdaptTripData(mustDecode(t, string(raw)))
	require.NoError(t, err)

	assert.Equal(t, once, twice, "adapting already-canonical data must be a no-op")
}

func TestAdaptTripData_LegacyShape(t *testing.T) {
	parsed := mustDecode(t, `{
		"destination": "Kuala Lumpur, Malaysia",
		"days": 1,
		"itinerary": [
			{
				"day": "Day 1",
				"plan": [
					{
						"time": "09:00-11:00",
						"place": "Petronas Towers",
						"details": "Twin skyscrapers with a skybridge.",
						"ticket_pricing": "$20",
						"rating": 4.7,
						"travel_mode": "walk"
					},
					{
						"time": "13:00-15:00",
						"place": {"name": "Batu Caves", "category": "temple"}
					}
				]
			}
		],
		"hotel_options": [
			{
				"name": "KLCC Suites",
				"address": "Jalan Ampang",
				"price": "$95/night",
				"rating": 4.3,
				"description": "Tower views."
			},
			{"name": "Budget Inn"}
		]
	}`)

	got, err := AdaptTripData(parsed)
	require.NoError(t, err)

	require.Len(t, got.Itinerary, 1)
	require.Len(t, got.Itinerary[0].Plan, 2)

	first := got.Itinerary[0].Plan[0]
	assert.Equal(t, "Petronas Towers", first.Place.Name, "a bare place string becomes the place name")
	assert.Equal(t, "Twin skyscrapers with a skybridge.", first.Place.ShortDesc)
	assert.Equal(t, "$20", first.Place.TicketPricing)

	second := got.Itinerary[0].Plan[1]
	assert.Equal(t, "Batu Caves", second.Place.Name)
	assert.Equal(t, "temple", second.Place.Category)
	assert.Equal(t, "N/A", second.Place.TicketPricing)

	require.Len(t, got.HotelOptions, 2)
	assert.Equal(t, "$95/night", got.HotelOptions[0].Price)
	assert.Equal(t, "Tower views.", got.HotelOptions[0].WhyPick)
	assert.Equal(t, "N/A", got.HotelOptions[1].Price)
}

func TestAdaptTripData_UnrecognizedShape(t *testing.T) {
	tests := []struct {
		name   string
		parsed map[string]any
	}{
		{name: "nil map", parsed: nil},
		{name: "unrelated keys", parsed: map[string]any{"message": "sorry, I cannot help"}},
		{name: "empty object", parsed: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdaptTripData(tt.parsed)
			require.ErrorIs(t, err, utils.ErrAdaptation)
			assert.Equal(t, response_models.TripData{
				Itinerary:     []response_models.DayPlan{},
				HotelOptions:  []response_models.Hotel{},
				TipsGeneral:   []string{},
				TipsLowImpact: []string{},
			}, got, "even on error the zero view model stays iterable")
		})
	}
}
