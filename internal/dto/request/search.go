package request

type ActivitySearchRequest struct {
	Lat        float64 `json:"lat" validate:"latitude"`
	Lng        float64 `json:"lng" validate:"longitude"`
	Date       string  `json:"date,omitempty"`
	Sports     []string `json:"sports,omitempty"`
	Timings    []int    `json:"timings,omitempty" validate:"omitempty,dive,min=0,max=3"`
	Skills     []int    `json:"skills,omitempty" validate:"omitempty,dive,min=0,max=4"`
	CityRadius int      `json:"city_radius,omitempty" validate:"omitempty,min=1"`
	SortBy     string   `json:"sort_by,omitempty" validate:"omitempty,oneof=distance time_date"`
	Page       int      `json:"page,omitempty" validate:"omitempty,min=0"`
}
