package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"food-tracker/catalog-svc/internal/domain"
)

// Predicate is a case-insensitive substring match against one column.
type Predicate struct {
	Column string
	Term   string
}

// filterColumns whitelists the columns a Predicate may reference.
var filterColumns = map[string]string{
	"area":     "r.area",
	"cuisines": "r.cuisines",
}

// PredicatesFor turns a filter into predicates, skipping blank terms.
func PredicatesFor(f domain.Filter) []Predicate {
	var preds []Predicate
	if term := strings.TrimSpace(f.Area); term != "" {
		preds = append(preds, Predicate{Column: "area", Term: term})
	}
	if term := strings.TrimSpace(f.Cuisine); term != "" {
		preds = append(preds, Predicate{Column: "cuisines", Term: term})
	}
	return preds
}

const aggregateSelect = `
		SELECT r.id, r.title, COALESCE(r.cuisines, ''), COALESCE(r.area, ''), COALESCE(r.google_map_link, ''),
		       COALESCE(r.added_by, ''), r.price_per_person, r.restaurant_picture, r.created_at,
		       COALESCE(AVG(rev.rating), 0) AS avg_rating,
		       COUNT(rev.id) AS review_count
		FROM restaurants r
		LEFT JOIN reviews rev ON rev.restaurant_id = r.id`

// buildAggregateQuery composes the listing query. Terms only ever travel as
// bound arguments.
func buildAggregateQuery(preds []Predicate, limit int) (string, []any) {
	query := aggregateSelect
	var (
		clauses []string
		args    []any
	)
	for _, pred := range preds {
		col, ok := filterColumns[pred.Column]
		if !ok {
			continue
		}
		args = append(args, "%"+escapeLike(pred.Term)+"%")
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
	}
	if len(clauses) > 0 {
		query += "\n\t\tWHERE " + strings.Join(clauses, " AND ")
	}
	query += "\n\t\tGROUP BY r.id\n\t\tORDER BY r.id DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf("\n\t\tLIMIT $%d", len(args))
	}
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func (r *PostgresRepository) ListRestaurantsWithAggregates(ctx context.Context, filter domain.Filter) ([]domain.RestaurantView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args := buildAggregateQuery(PredicatesFor(filter), filter.Limit)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("list restaurants", err)
	}
	defer rows.Close()

	views := []domain.RestaurantView{}
	for rows.Next() {
		var (
			v     domain.RestaurantView
			price sql.NullFloat64
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.Cuisines, &v.Area, &v.GoogleMapLink, &v.AddedBy,
			&price, &v.Picture, &v.CreatedAt, &v.AvgRating, &v.ReviewCount); err != nil {
			return nil, classify("scan restaurant", err)
		}
		v.PricePerPerson = floatPtr(price)
		v.HasPicture = len(v.Picture) > 0
		views = append(views, v)
	}
	return views, classify("list restaurants", rows.Err())
}

func (r *PostgresRepository) ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, reviewer_name, rating, COALESCE(comment, ''), review_date
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY review_date DESC, id DESC
	`, restaurantID)
	if err != nil {
		return nil, classify("list reviews", err)
	}
	defer rows.Close()

	reviews := []domain.ReviewView{}
	for rows.Next() {
		var rev domain.ReviewView
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.ReviewerName, &rev.Rating, &rev.Comment, &rev.ReviewDate); err != nil {
			return nil, classify("scan review", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, classify("list reviews", rows.Err())
}

// AverageRating is rounded to one decimal and is 0 for a restaurant without
// reviews.
func (r *PostgresRepository) AverageRating(ctx context.Context, restaurantID int64) (float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var avg float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE restaurant_id = $1", restaurantID).Scan(&avg)
	if err != nil {
		return 0, classify("average rating", err)
	}
	return math.Round(avg*10) / 10, nil
}

func (r *PostgresRepository) RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
	if err != nil {
		return nil, classify("rating distribution", err)
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, classify("scan distribution", err)
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, classify("rating distribution", rows.Err())
}

func (r *PostgresRepository) Stats(ctx context.Context) (domain.CatalogStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats domain.CatalogStats
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM restaurants),
			(SELECT COUNT(DISTINCT area) FROM restaurants WHERE COALESCE(area, '') <> ''),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM users)
	`).Scan(&stats.Restaurants, &stats.Areas, &stats.Reviews, &stats.Users)
	if err != nil {
		return domain.CatalogStats{}, classify("catalog stats", err)
	}
	return stats, nil
}

func (r *PostgresRepository) ListAreas(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, "list areas", `
		SELECT DISTINCT area
		FROM restaurants
		WHERE COALESCE(area, '') <> ''
		ORDER BY area
	`)
}

// ListCuisines returns the distinct tags found in the comma joined cuisine
// column.
func (r *PostgresRepository) ListCuisines(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, "list cuisines", `
		SELECT DISTINCT btrim(tag) AS tag
		FROM restaurants, regexp_split_to_table(COALESCE(cuisines, ''), ',') AS tag
		WHERE btrim(tag) <> ''
		ORDER BY tag
	`)
}

func (r *PostgresRepository) listStrings(ctx context.Context, op, query string) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, classify(op, err)
		}
		values = append(values, v)
	}
	return values, classify(op, rows.Err())
}
