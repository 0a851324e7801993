package usecase

import (
	"time"

	"sports-booking/internal/client/gcal"
	"sports-booking/internal/client/ipapi"
	"sports-booking/internal/client/playo"
	"sports-booking/internal/client/reddit"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/gateway"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Geo      GeoService
	Reddit   RedditService
	Activity ActivityService
	Booking  BookingService
	Calendar CalendarService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	geoClient := ipapi.NewClient(config.GeoIP.BaseURL, upstreamTimeout(config.GeoIP), log)
	redditClient := reddit.NewClient(config.Reddit.BaseURL, upstreamTimeout(config.Reddit), log)
	playoClient := playo.NewClient(config.Playo.BaseURL, upstreamTimeout(config.Playo), log)
	calendarClient := gcal.NewClient(config.Calendar, log)
	paymentGateway := gateway.NewSimulatedGateway(log)

	return &Service{
		Geo:      NewGeoService(geoClient, log),
		Reddit:   NewRedditService(redditClient, log),
		Activity: NewActivityService(playoClient, log),
		Booking:  NewBookingService(repo, paymentGateway, log),
		Calendar: NewCalendarService(repo, calendarClient, config.Calendar, log),
	}
}

func upstreamTimeout(cfg utils.UpstreamConfig) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
