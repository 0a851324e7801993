package wire

import (
	"sports-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGeo(r chi.Router, geoHandler *adaptor.GeoHandler) {
	// GET /api/geo/lookup - Resolve an IP (or the caller's own) to a location
	r.Get("/api/geo/lookup", geoHandler.Lookup)

	// GET /api/geo/current - Resolve the server's public IP
	r.Get("/api/geo/current", geoHandler.Current)
}
