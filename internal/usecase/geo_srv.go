package usecase

import (
	"context"
	"fmt"

	"sports-booking/internal/client/ipapi"

	"go.uber.org/zap"
)

type GeoService interface {
	Lookup(ctx context.Context, ip, fields, lang string) (*ipapi.LocationInfo, error)
	CurrentLocation(ctx context.Context) (*ipapi.LocationInfo, error)
}

type geoService struct {
	client *ipapi.Client
	log    *zap.Logger
}

func NewGeoService(client *ipapi.Client, log *zap.Logger) GeoService {
	return &geoService{
		client: client,
		log:    log.With(zap.String("service", "geo")),
	}
}

func (s *geoService) Lookup(ctx context.Context, ip, fields, lang string) (*ipapi.LocationInfo, error) {
	info, err := s.client.Lookup(ctx, ip, fields, lang)
	if err != nil {
		return nil, fmt.Errorf("lookup location: %w", err)
	}

	s.log.Info("Location resolved",
		zap.String("query", info.Query),
		zap.String("city", info.City),
		zap.String("country", info.Country),
	)

	return info, nil
}

// CurrentLocation resolves the caller's own IP
func (s *geoService) CurrentLocation(ctx context.Context) (*ipapi.LocationInfo, error) {
	return s.Lookup(ctx, "", "", "")
}
