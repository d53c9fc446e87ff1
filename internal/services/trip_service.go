package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ankala/internal/ai"
	"ankala/internal/models/db_models"
	"ankala/internal/models/request_models"
	"ankala/internal/models/response_models"
	"ankala/internal/repositories"
	"ankala/pkg/jsonrepair"
	"ankala/pkg/utils"
)

// CompletionClient is the slice of ai.Client the trip pipeline needs.
type CompletionClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest, userEmail string) (*response_models.TripResponse, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error)
	GetListOfTripsByUserEmail(ctx context.Context, email string, page int, pageSize int) ([]response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string, email string) error
	GetShareMessage(ctx context.Context, tripId string) (*response_models.ShareResponse, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	client    CompletionClient
	debouncer *ai.Debouncer
	waNumber  string
	logger    *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	client CompletionClient,
	debouncer *ai.Debouncer,
	waNumber string,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		client:    client,
		debouncer: debouncer,
		waNumber:  waNumber,
		logger:    logger,
	}
}

// GenerateTrip runs the full pipeline: prompt → completion → normalize →
// adapt → persist. Nothing is written unless the response canonicalized, so a
// failed generation never corrupts saved state.
func (s *TripService) GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest, userEmail string) (*response_models.TripResponse, error) {
	if req.Preferences.Location.Label == "" {
		return nil, utils.ErrInvalidInput
	}

	key := req.SessionID
	if key == "" {
		key = userEmail
	}
	s.debouncer.Begin(key)
	defer s.debouncer.End(key)

	prompt := BuildTripPrompt(req.Preferences)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("trip generation failed", zap.Error(err))
		return nil, err
	}

	parsed, err := jsonrepair.Parse(raw)
	if err != nil {
		// Keep the raw model text in the log so new malformed shapes can be
		// diagnosed offline.
		var pe *jsonrepair.ParseError
		if errors.As(err, &pe) {
			s.logger.Error("model response unparseable",
				zap.String("raw", pe.Raw),
				zap.Error(pe.Err))
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIResponse, err)
	}

	tripData, err := AdaptTripData(parsed)
	if err != nil {
		s.logger.Error("model response had unrecognized shape", zap.Any("parsed", parsed))
		return nil, err
	}

	selectionJSON, err := json.Marshal(req.Preferences)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripJSON, err := json.Marshal(tripData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAdaptation, err)
	}

	trip := &db_models.Trip{
		UserEmail:     userEmail,
		Destination:   tripData.Destination,
		Days:          tripData.Days,
		UserSelection: db_models.JSONB(selectionJSON),
		TripData:      db_models.JSONB(tripJSON),
	}
	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("trip generated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("destination", tripData.Destination),
		zap.Int("days", tripData.Days))

	return &response_models.TripResponse{
		ID:            trip.ID.String(),
		UserEmail:     userEmail,
		UserSelection: req.Preferences,
		TripData:      tripData,
		CreatedAt:     trip.CreatedAt,
	}, nil
}

func (s *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return s.toResponse(trip)
}

func (s *TripService) GetListOfTripsByUserEmail(ctx context.Context, email string, page int, pageSize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	trips, err := s.tripRepo.GetListOfTripsByUserEmail(ctx, email, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		resp, err := s.toResponse(&trips[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripId string, email string) error {
	if err := s.tripRepo.DeleteTripById(ctx, tripId, email); err != nil {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) GetShareMessage(ctx context.Context, tripId string) (*response_models.ShareResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var prefs request_models.TripPreferences
	_ = json.Unmarshal(trip.UserSelection, &prefs)
	tripData, err := decodeTripData(trip.TripData)
	if err != nil {
		return nil, err
	}

	message := BuildShareMessage(prefs, tripData)
	return &response_models.ShareResponse{
		Message:      message,
		WhatsAppLink: BuildWhatsAppLink(s.waNumber, message),
	}, nil
}

// toResponse re-adapts the stored payload on the way out, so records written
// by older prompt revisions still come back in the canonical shape.
func (s *TripService) toResponse(trip *db_models.Trip) (*response_models.TripResponse, error) {
	var selection any
	_ = json.Unmarshal(trip.UserSelection, &selection)

	tripData, err := decodeTripData(trip.TripData)
	if err != nil {
		return nil, err
	}

	return &response_models.TripResponse{
		ID:            trip.ID.String(),
		UserEmail:     trip.UserEmail,
		UserSelection: selection,
		TripData:      tripData,
		CreatedAt:     trip.CreatedAt,
	}, nil
}

func decodeTripData(raw db_models.JSONB) (response_models.TripData, error) {
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return response_models.TripData{}, utils.ErrAdaptation
	}
	return AdaptTripData(parsed)
}
