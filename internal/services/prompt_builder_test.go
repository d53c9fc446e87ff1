package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankala/internal/models/request_models"
)

func TestBuildTripPrompt_Deterministic(t *testing.T) {
	prefs := request_models.TripPreferences{
		Location:  request_models.LocationOption{Label: "Hanoi, Vietnam", Lat: 21.03, Lon: 105.85},
		NoOfDays:  4,
		Traveler:  "couple",
		Budget:    "Luxury",
		Interests: []string{"food", "history"},
	}

	first := BuildTripPrompt(prefs)
	second := BuildTripPrompt(prefs)
	assert.Equal(t, first, second, "equal preferences must produce byte-identical prompts")
}

func TestBuildTripPrompt_SubstitutesFields(t *testing.T) {
	prefs := request_models.TripPreferences{
		Location: request_models.LocationOption{Label: "Da Nang, Vietnam"},
		NoOfDays: 5,
		Traveler: "family with kids",
		Budget:   "Cheap",
		Dining:   []string{"street food", "vegetarian"},
		MustHave: "  sunrise at Marble Mountains  ",
	}

	prompt := BuildTripPrompt(prefs)

	assert.Contains(t, prompt, "- Destination: Da Nang, Vietnam")
	assert.Contains(t, prompt, "- Total Days: 5")
	assert.Contains(t, prompt, "- Traveler Type: family with kids")
	assert.Contains(t, prompt, "- Budget Level: Cheap")
	assert.Contains(t, prompt, "- Dining Preferences: street food, vegetarian")
	assert.Contains(t, prompt, "- Must-have Notes: sunrise at Marble Mountains")
}

func TestBuildTripPrompt_DefaultsForMissingFields(t *testing.T) {
	prompt := BuildTripPrompt(request_models.TripPreferences{
		Location: request_models.LocationOption{Label: "Bangkok, Thailand"},
	})

	assert.Contains(t, prompt, "- Total Days: 3")
	assert.Contains(t, prompt, "- Traveler Type: solo traveler")
	assert.Contains(t, prompt, "- Budget Level: Moderate")
	assert.Contains(t, prompt, "- Focus Interests: Blend a variety of highlights.")
	assert.Contains(t, prompt, "- Must-have Notes: No specific requests beyond great storytelling.")
}

func TestBuildTripPrompt_CarriesHardRules(t *testing.T) {
	prompt := BuildTripPrompt(request_models.TripPreferences{
		Location: request_models.LocationOption{Label: "Singapore"},
	})

	assert.Contains(t, prompt, `EXACTLY 3 itinerary options with styles: ["relaxed","balanced","packed"]`)
	assert.Contains(t, prompt, "No more than 3.")
	assert.Contains(t, prompt, `Time format "HH:MM-HH:MM".`)
	assert.Contains(t, prompt, "ONE SINGLE LINE of valid JSON. Do not include ``` or any extra text.")

	lines := strings.Split(strings.TrimRight(prompt, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], `Final char must be "}".`),
		"prompt must end with the single-line JSON instruction")
}
