package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"food-tracker/catalog-svc/internal/domain"
)

// QueryTimeout bounds every call made against the database.
var QueryTimeout = 5 * time.Second

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}

func (r *PostgresRepository) InsertRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (title, cuisines, area, google_map_link, added_by, price_per_person, restaurant_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, nullIfEmpty(rest.Title), rest.Cuisines, rest.Area, rest.GoogleMapLink, rest.AddedBy,
		nullFloat(rest.PricePerPerson), rest.Picture).
		Scan(&rest.ID, &rest.CreatedAt)
	if err != nil {
		return 0, classify("insert restaurant", err)
	}
	return rest.ID, nil
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		rest  domain.Restaurant
		price sql.NullFloat64
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(cuisines, ''), COALESCE(area, ''), COALESCE(google_map_link, ''),
		       COALESCE(added_by, ''), price_per_person, restaurant_picture, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Title, &rest.Cuisines, &rest.Area, &rest.GoogleMapLink,
			&rest.AddedBy, &price, &rest.Picture, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify("get restaurant", err)
	}
	rest.PricePerPerson = floatPtr(price)
	return &rest, nil
}

func (r *PostgresRepository) FindRestaurantIDByTitle(ctx context.Context, title string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM restaurants WHERE title = $1 ORDER BY id DESC LIMIT 1", title).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, classify("find restaurant", err)
	}
	return id, nil
}

// UpdateRestaurant replaces the editable fields. The picture column is only
// touched when replacePicture is set.
func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant, replacePicture bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		res sql.Result
		err error
	)
	if replacePicture {
		res, err = r.DB.ExecContext(ctx, `
			UPDATE restaurants
			SET title = $1, cuisines = $2, area = $3, google_map_link = $4, price_per_person = $5, restaurant_picture = $6
			WHERE id = $7`,
			nullIfEmpty(rest.Title), rest.Cuisines, rest.Area, rest.GoogleMapLink, nullFloat(rest.PricePerPerson), rest.Picture, rest.ID)
	} else {
		res, err = r.DB.ExecContext(ctx, `
			UPDATE restaurants
			SET title = $1, cuisines = $2, area = $3, google_map_link = $4, price_per_person = $5
			WHERE id = $6`,
			nullIfEmpty(rest.Title), rest.Cuisines, rest.Area, rest.GoogleMapLink, nullFloat(rest.PricePerPerson), rest.ID)
	}
	if err != nil {
		return classify("update restaurant", err)
	}
	return requireRow(res, "update restaurant")
}

// DeleteRestaurant removes the restaurant and its reviews in one transaction.
// Deleting an id that does not exist is not an error.
func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin delete restaurant", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reviews WHERE restaurant_id = $1", id); err != nil {
		return classify("delete reviews", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id); err != nil {
		return classify("delete restaurant", err)
	}
	return classify("commit delete restaurant", tx.Commit())
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (restaurant_id, reviewer_name, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, review_date
	`, review.RestaurantID, review.ReviewerName, review.Rating, review.Comment).
		Scan(&review.ID, &review.ReviewDate)
	return classify("insert review", err)
}

// UpdateReview changes rating and comment only; review_date is kept.
func (r *PostgresRepository) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET rating = $1, comment = $2 WHERE id = $3", rating, comment, id)
	if err != nil {
		return classify("update review", err)
	}
	return requireRow(res, "update review")
}

func (r *PostgresRepository) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rev domain.Review
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, reviewer_name, rating, COALESCE(comment, ''), review_date
		FROM reviews
		WHERE id = $1`, id).
		Scan(&rev.ID, &rev.RestaurantID, &rev.ReviewerName, &rev.Rating, &rev.Comment, &rev.ReviewDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify("get review", err)
	}
	return &rev, nil
}

func (r *PostgresRepository) InsertUser(ctx context.Context, name string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user := domain.User{Name: name}
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO users (name) VALUES ($1) RETURNING id, created_at", name).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, classify("insert user", err)
	}
	return &user, nil
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, name string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE name = $1", name)
	return classify("delete user", err)
}

func (r *PostgresRepository) CountUsers(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, classify("count users", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, created_at FROM users ORDER BY name ASC")
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, classify("scan user", err)
		}
		users = append(users, u)
	}
	return users, classify("list users", rows.Err())
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullIfEmpty lets the NOT NULL column reject a blank title.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
