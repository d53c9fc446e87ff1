package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ankala/internal/models/response_models"
	"ankala/internal/repositories"
	"ankala/pkg/jsonrepair"
	"ankala/pkg/utils"
)

type TipsServiceInterface interface {
	GetTripTips(ctx context.Context, tripId string) (*response_models.TripTipsResponse, error)
}

type TipsService struct {
	tripRepo repositories.TripRepository
	client   CompletionClient
	logger   *zap.Logger
}

func NewTipsService(tripRepo repositories.TripRepository, client CompletionClient, logger *zap.Logger) TipsServiceInterface {
	return &TipsService{tripRepo: tripRepo, client: client, logger: logger}
}

const maxTips = 6

// GetTripTips asks the completion service for travel advice over a saved
// itinerary. Any failure along the way degrades to heuristics derived from
// the itinerary itself; the endpoint never fails because the model did.
func (s *TipsService) GetTripTips(ctx context.Context, tripId string) (*response_models.TripTipsResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	tripData, err := decodeTripData(trip.TripData)
	if err != nil {
		return nil, err
	}

	resp := &response_models.TripTipsResponse{
		Tips:       HeuristicTravelTips(tripData),
		CarbonTips: HeuristicCarbonTips(tripData),
		Source:     "heuristic",
	}

	aiTips, err := s.requestAITips(ctx, tripData)
	if err != nil {
		s.logger.Warn("ai tips unavailable, using heuristic fallback",
			zap.String("trip_id", tripId), zap.Error(err))
		return resp, nil
	}

	resp.Tips = aiTips
	resp.Source = "ai"
	return resp, nil
}

func (s *TipsService) requestAITips(ctx context.Context, tripData response_models.TripData) ([]response_models.TravelTip, error) {
	if len(tripData.Itinerary) == 0 {
		return nil, fmt.Errorf("no itinerary to advise on")
	}

	tipsCtx, err := json.Marshal(map[string]any{
		"destination": tripData.Destination,
		"days":        tripData.Days,
		"itinerary":   tripData.Itinerary,
	})
	if err != nil {
		return nil, err
	}

	prompt := "You are a travel expert. Provide up to 6 actionable travel tips in English based on the context.\n" +
		`Return ONLY a JSON object: {"tips":[{"title":"...","detail":"..."}]}.` + "\n" +
		"Keep each detail <= 150 chars.\nContext:\n" + string(tipsCtx)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := jsonrepair.Parse(raw)
	if err != nil {
		return nil, err
	}

	var out []response_models.TravelTip
	for _, t := range slice(parsed, "tips") {
		tip, ok := t.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, response_models.TravelTip{
			Title:  str(tip, "title"),
			Detail: str(tip, "detail"),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no tips")
	}
	if len(out) > maxTips {
		out = out[:maxTips]
	}
	return out, nil
}

var freeTicketRe = regexp.MustCompile(`(?i)(free|\$0|no ticket)`)

// HeuristicTravelTips derives general advice from the itinerary alone: the
// highest-rated places, free activities, and standing pacing/booking advice.
func HeuristicTravelTips(tripData response_models.TripData) []response_models.TravelTip {
	var tips []response_models.TravelTip
	blocks := flattenBlocks(tripData)

	rated := make([]response_models.ActivityBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Place.Rating > 0 {
			rated = append(rated, b)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Place.Rating > rated[j].Place.Rating
	})
	if len(rated) > 3 {
		rated = rated[:3]
	}
	if len(rated) > 0 {
		parts := make([]string, 0, len(rated))
		for _, b := range rated {
			parts = append(parts, fmt.Sprintf("%s (⭐%s)", b.Place.Name, formatNumber(b.Place.Rating)))
		}
		tips = append(tips, response_models.TravelTip{
			Title:  "Top must-see",
			Detail: strings.Join(parts, ", "),
		})
	}

	var free []string
	for _, b := range blocks {
		if freeTicketRe.MatchString(b.Place.TicketPricing) {
			free = append(free, b.Place.Name)
		}
	}
	if len(free) > 0 {
		sample := free
		if len(sample) > 2 {
			sample = sample[:2]
		}
		tips = append(tips, response_models.TravelTip{
			Title:  "Free & fun",
			Detail: fmt.Sprintf("Enjoy %d free activities such as %s.", len(free), strings.Join(sample, ", ")),
		})
	}

	tips = append(tips,
		response_models.TravelTip{Title: "Smart pacing", Detail: "Cluster nearby sights per day and leave a buffer slot."},
		response_models.TravelTip{Title: "Book ahead", Detail: "Tickets for popular sites and transport can sell out."},
	)

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

var (
	walkModeRe = regexp.MustCompile(`(?i)(walk|foot|stroll)`)
	carModeRe  = regexp.MustCompile(`(?i)(car|taxi|grab|gojek|uber)`)
)

// HeuristicCarbonTips derives low-impact advice from the travel modes and leg
// lengths found in the itinerary.
func HeuristicCarbonTips(tripData response_models.TripData) []response_models.TravelTip {
	blocks := flattenBlocks(tripData)

	hasWalkable := false
	hasCar := false
	hasLong := false
	for _, b := range blocks {
		if walkModeRe.MatchString(b.Place.TravelMode) {
			hasWalkable = true
		}
		if carModeRe.MatchString(b.Place.TravelMode) {
			hasCar = true
		}
		if b.Place.EstTravelMinutes >= 45 {
			hasLong = true
		}
	}

	tips := []response_models.TravelTip{
		{Title: "Group nearby sights", Detail: "Cut hops to reduce idle emissions & traffic."},
	}
	if hasCar {
		tips = append(tips, response_models.TravelTip{Title: "Fewer car legs", Detail: "Bundle stops or take one bus/minivan instead."})
	}
	if hasWalkable {
		tips = append(tips, response_models.TravelTip{Title: "Max walking windows", Detail: "Short city hops on foot beat taxis for CO₂."})
	}
	if hasLong {
		tips = append(tips, response_models.TravelTip{Title: "Swap one long ride", Detail: "Replace a 60–90 min car leg with public transport."})
	}
	tips = append(tips,
		response_models.TravelTip{Title: "Eco lodging habits", Detail: "Reuse towels/linen and switch off AC when out."},
		response_models.TravelTip{Title: "Eat local", Detail: "Prefer local, seasonal menus to lower food miles."},
	)

	if len(tips) > 5 {
		tips = tips[:5]
	}
	return tips
}

func flattenBlocks(tripData response_models.TripData) []response_models.ActivityBlock {
	var out []response_models.ActivityBlock
	for _, day := range tripData.Itinerary {
		out = append(out, day.Plan...)
	}
	return out
}
