package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cargasinestres/booking-backend/internal/model"
)

func TestCalculateAverageRating(t *testing.T) {
	cases := []struct {
		name  string
		stars []int
		want  int
	}{
		{"nil ratings", nil, 0},
		{"no ratings", []int{}, 0},
		{"single rating", []int{3}, 3},
		{"half rounds up", []int{3, 4}, 4},
		{"plain average", []int{1, 2, 2}, 2},
		{"all fives", []int{5, 5, 5}, 5},
		{"exact half", []int{1, 2}, 2},
		{"rounds down below half", []int{1, 1, 2}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			co := &model.Company{}
			for _, s := range tc.stars {
				co.Ratings = append(co.Ratings, model.Rating{Stars: s})
			}
			assert.Equal(t, tc.want, CalculateAverageRating(co))
		})
	}
}

func TestCalculateAverageRatingNilCompany(t *testing.T) {
	assert.Equal(t, 0, CalculateAverageRating(nil))
}
