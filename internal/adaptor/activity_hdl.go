package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"sports-booking/internal/dto/request"
	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// Search handles POST /api/activities/search
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.ActivitySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Search(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "search activities")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// Sports handles GET /api/activities/sports
func (h *ActivityHandler) Sports(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Sports())
}

// Timings handles GET /api/activities/timings
func (h *ActivityHandler) Timings(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.TimingSlots())
}

// Skills handles GET /api/activities/skills
func (h *ActivityHandler) Skills(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.SkillLevels())
}

// handleServiceError handles errors for activity operations
func (h *ActivityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
