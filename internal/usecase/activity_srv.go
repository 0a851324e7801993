package usecase

import (
	"context"
	"fmt"

	"sports-booking/internal/client/playo"
	"sports-booking/internal/dto/request"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

// Catalog entries the search filters are keyed on. IDs come from the
// venue provider and are stable.

type Sport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Key  string `json:"key"`
}

type TimingSlot struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Time string `json:"time"`
}

type SkillLevel struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Key  string `json:"key"`
}

type ActivityService interface {
	Search(ctx context.Context, req *request.ActivitySearchRequest) (map[string]any, error)
	Sports() []Sport
	TimingSlots() []TimingSlot
	SkillLevels() []SkillLevel
}

type activityService struct {
	client *playo.Client
	log    *zap.Logger
}

func NewActivityService(client *playo.Client, log *zap.Logger) ActivityService {
	return &activityService{
		client: client,
		log:    log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) Search(ctx context.Context, req *request.ActivitySearchRequest) (map[string]any, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Activity search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	result, err := s.client.SearchActivities(ctx, &playo.SearchRequest{
		Lat:        req.Lat,
		Lng:        req.Lng,
		Date:       req.Date,
		SportIDs:   req.Sports,
		TimingIDs:  req.Timings,
		SkillIDs:   req.Skills,
		CityRadius: req.CityRadius,
		SortBy:     req.SortBy,
		Page:       req.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("search activities: %w", err)
	}

	s.log.Info("Activity search completed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lng", req.Lng),
		zap.Strings("sports", req.Sports),
	)

	return result, nil
}

func (s *activityService) Sports() []Sport {
	return []Sport{
		{Name: "Badminton", ID: "SP5", Key: "badminton"},
		{Name: "Football", ID: "SP2", Key: "football"},
	}
}

func (s *activityService) TimingSlots() []TimingSlot {
	return []TimingSlot{
		{Name: "Morning", ID: 0, Key: "morning", Time: "12 AM to 9 AM"},
		{Name: "Day", ID: 1, Key: "day", Time: "9 AM to 4 PM"},
		{Name: "Evening", ID: 2, Key: "evening", Time: "4 PM to 9 PM"},
		{Name: "Night", ID: 3, Key: "night", Time: "9 PM to 12 AM"},
	}
}

func (s *activityService) SkillLevels() []SkillLevel {
	return []SkillLevel{
		{Name: "Beginner", ID: 0, Key: "beginner"},
		{Name: "Amateur", ID: 1, Key: "amateur"},
		{Name: "Intermediate", ID: 2, Key: "intermediate"},
		{Name: "Advanced", ID: 3, Key: "advanced"},
		{Name: "Professional", ID: 4, Key: "professional"},
	}
}
