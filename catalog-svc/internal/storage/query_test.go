package storage

import (
	"context"
	"testing"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggregateColumns = []string{
	"id", "title", "cuisines", "area", "google_map_link", "added_by",
	"price_per_person", "restaurant_picture", "created_at", "avg_rating", "review_count",
}

func TestBuildAggregateQuery(t *testing.T) {
	tests := []struct {
		name        string
		preds       []Predicate
		limit       int
		wantClauses []string
		wantArgs    []any
		noWhere     bool
	}{
		{
			name:    "no filters",
			noWhere: true,
		},
		{
			name:        "area only",
			preds:       []Predicate{{Column: "area", Term: "kora"}},
			wantClauses: []string{"r.area ILIKE $1"},
			wantArgs:    []any{"%kora%"},
		},
		{
			name:        "area and cuisine are combined",
			preds:       []Predicate{{Column: "area", Term: "Indiranagar"}, {Column: "cuisines", Term: "thai"}},
			wantClauses: []string{"r.area ILIKE $1 AND r.cuisines ILIKE $2"},
			wantArgs:    []any{"%Indiranagar%", "%thai%"},
		},
		{
			name:        "limit follows filter args",
			preds:       []Predicate{{Column: "cuisines", Term: "Indian"}},
			limit:       3,
			wantClauses: []string{"r.cuisines ILIKE $1", "LIMIT $2"},
			wantArgs:    []any{"%Indian%", 3},
		},
		{
			name:        "unknown column is ignored",
			preds:       []Predicate{{Column: "title; DROP TABLE users", Term: "x"}},
			limit:       5,
			noWhere:     true,
			wantClauses: []string{"LIMIT $1"},
			wantArgs:    []any{5},
		},
		{
			name:        "wildcards in the term are literal",
			preds:       []Predicate{{Column: "area", Term: `50%_off\`}},
			wantClauses: []string{"r.area ILIKE $1"},
			wantArgs:    []any{`%50\%\_off\\%`},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			query, args := buildAggregateQuery(testCase.preds, testCase.limit)

			assert.Contains(t, query, "LEFT JOIN reviews rev ON rev.restaurant_id = r.id")
			assert.Contains(t, query, "GROUP BY r.id")
			assert.Contains(t, query, "ORDER BY r.id DESC")
			for _, clause := range testCase.wantClauses {
				assert.Contains(t, query, clause)
			}
			if testCase.noWhere {
				assert.NotContains(t, query, "WHERE")
			}
			if testCase.limit == 0 {
				assert.NotContains(t, query, "LIMIT")
			}
			assert.Equal(t, testCase.wantArgs, args)
		})
	}
}

func TestPredicatesFor_SkipsBlankTerms(t *testing.T) {
	assert.Empty(t, PredicatesFor(domain.Filter{Area: "  ", Cuisine: ""}))
	assert.Equal(t,
		[]Predicate{{Column: "cuisines", Term: "Thai"}},
		PredicatesFor(domain.Filter{Area: " ", Cuisine: " Thai "}))
}

func TestListRestaurantsWithAggregates(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM restaurants r\s+LEFT JOIN reviews rev`).
		WillReturnRows(sqlmock.NewRows(aggregateColumns).
			AddRow(int64(2), "Noodle Bar", "Chinese", "Koramangala", "https://maps/2", "Shweta", nil, nil, now, 0.0, int64(0)).
			AddRow(int64(1), "Spice Hub", "Indian, Thai", "Indiranagar", "https://maps/1", "Raj", 350.0, []byte("img"), now, 4.5, int64(2)))

	views, err := repo.ListRestaurantsWithAggregates(context.Background(), domain.Filter{})
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, 0.0, views[0].AvgRating)
	assert.Equal(t, 0, views[0].ReviewCount)
	assert.False(t, views[0].HasPicture)
	assert.Nil(t, views[0].PricePerPerson)

	assert.Equal(t, 4.5, views[1].AvgRating)
	assert.Equal(t, 2, views[1].ReviewCount)
	assert.True(t, views[1].HasPicture)
	require.NotNil(t, views[1].PricePerPerson)
	assert.Equal(t, 350.0, *views[1].PricePerPerson)
}

func TestListRestaurantsWithAggregates_FilterAndLimit(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`WHERE r.area ILIKE \$1 AND r.cuisines ILIKE \$2 GROUP BY r.id ORDER BY r.id DESC LIMIT \$3`).
		WithArgs("%Indiranagar%", "%Thai%", 3).
		WillReturnRows(sqlmock.NewRows(aggregateColumns))

	views, err := repo.ListRestaurantsWithAggregates(context.Background(),
		domain.Filter{Area: "Indiranagar", Cuisine: "Thai", Limit: 3})
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestListReviews_NewestFirst(t *testing.T) {
	repo, mock := setupRepo(t)
	newer := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`ORDER BY review_date DESC, id DESC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "reviewer_name", "rating", "comment", "review_date"}).
			AddRow(int64(8), int64(1), "Anish", 5, "Loved it", newer).
			AddRow(int64(3), int64(1), "Raj", 3, "", older))

	reviews, err := repo.ListReviews(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Anish", reviews[0].ReviewerName)
	assert.Equal(t, newer, reviews[0].ReviewDate)
	assert.Equal(t, "", reviews[1].Comment)
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "no reviews", raw: 0, want: 0},
		{name: "rounded to one decimal", raw: 3.6666666, want: 3.7},
		{name: "exact", raw: 4, want: 4},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM reviews WHERE restaurant_id = \$1`).
				WithArgs(1).
				WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(testCase.raw))

			avg, err := repo.AverageRating(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, avg)
		})
	}
}

func TestRatingDistribution_FillsMissingRatings(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("GROUP BY rating").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(3, 1).
			AddRow(5, 2))

	dist, err := repo.RatingDistribution(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 1, "4": 0, "5": 2}, dist)
}

func TestStats(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT area\) FROM restaurants`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurants", "areas", "reviews", "users"}).AddRow(4, 2, 9, 5))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogStats{Restaurants: 4, Areas: 2, Reviews: 9, Users: 5}, stats)
}

func TestListAreasAndCuisines(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT DISTINCT area").
		WillReturnRows(sqlmock.NewRows([]string{"area"}).AddRow("Indiranagar").AddRow("Koramangala"))
	mock.ExpectQuery("regexp_split_to_table").
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("Indian").AddRow("Thai"))

	areas, err := repo.ListAreas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Indiranagar", "Koramangala"}, areas)

	cuisines, err := repo.ListCuisines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Indian", "Thai"}, cuisines)
}
