package service

import (
	"math"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// CalculateAverageRating returns the integer average star rating of a
// company, rounded half up.  A nil company or an empty rating list
// yields 0.  Pure function, no persistence access.
func CalculateAverageRating(co *model.Company) int {
	if co == nil || len(co.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rt := range co.Ratings {
		sum += rt.Stars
	}
	return int(math.Round(float64(sum) / float64(len(co.Ratings))))
}
