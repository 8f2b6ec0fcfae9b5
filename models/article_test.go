package models

import "testing"

func TestArticleAverageRating_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int64
		want    float64
	}{
		{"no ratings", nil, 0},
		{"empty history", []int64{}, 0},
		{"single rating", []int64{4}, 4},
		{"whole average", []int64{4, 5, 3}, 4},
		{"rounded to two decimals", []int64{4, 4, 5}, 4.33},
		{"rounded up", []int64{5, 5, 5, 4, 4, 4}, 4.5},
		{"repeat votes all count", []int64{1, 1, 1, 5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{Ratings: tt.ratings}
			if got := a.AverageRating(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestArticleTableName(t *testing.T) {
	if got := (Article{}).TableName(); got != "articles" {
		t.Errorf("expected 'articles', got '%s'", got)
	}
}
