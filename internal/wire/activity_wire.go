package wire

import (
	"sports-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireActivity(r chi.Router, activityHandler *adaptor.ActivityHandler) {
	r.Route("/api/activities", func(r chi.Router) {
		// POST /api/activities/search - Search venues and activities near a point
		r.Post("/search", activityHandler.Search)

		// Filter catalogs used to build search requests
		r.Get("/sports", activityHandler.Sports)
		r.Get("/timings", activityHandler.Timings)
		r.Get("/skills", activityHandler.Skills)
	})
}
