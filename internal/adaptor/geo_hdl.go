package adaptor

import (
	"net/http"
	"strings"

	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type GeoHandler struct {
	service usecase.GeoService
	log     *zap.Logger
}

func NewGeoHandler(service usecase.GeoService, log *zap.Logger) *GeoHandler {
	return &GeoHandler{
		service: service,
		log:     log.With(zap.String("handler", "geo")),
	}
}

// Lookup handles GET /api/geo/lookup?ip=&fields=&lang=
func (h *GeoHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	info, err := h.service.Lookup(r.Context(), query.Get("ip"), query.Get("fields"), query.Get("lang"))
	if err != nil {
		h.handleServiceError(w, err, "lookup location")
		return
	}

	utils.ResponseSuccess(w, "success", info)
}

// Current handles GET /api/geo/current
func (h *GeoHandler) Current(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.CurrentLocation(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "lookup current location")
		return
	}

	utils.ResponseSuccess(w, "success", info)
}

// handleServiceError handles errors for geo operations
func (h *GeoHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg)
	}
}
