package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestInsertRestaurant(t *testing.T) {
	repo, mock := setupRepo(t)
	price := 400.0
	rest := &domain.Restaurant{
		Title:          "Spice Hub",
		Cuisines:       "Indian, Thai",
		Area:           "Indiranagar",
		GoogleMapLink:  "https://maps/x",
		AddedBy:        "Raj",
		PricePerPerson: &price,
	}

	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs("Spice Hub", "Indian, Thai", "Indiranagar", "https://maps/x", "Raj", 400.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	id, err := repo.InsertRestaurant(context.Background(), rest)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), rest.ID)
}

func TestInsertRestaurant_MissingTitle(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs(nil, "", "", "", "", nil, sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23502", Column: "title"})

	id, err := repo.InsertRestaurant(context.Background(), &domain.Restaurant{})
	assert.Zero(t, id)
	assert.ErrorIs(t, err, ErrConstraint)

	var cerr *ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "title", cerr.Field)
}

func TestInsertReview_Constraints(t *testing.T) {
	tests := []struct {
		name      string
		review    domain.Review
		dbErr     error
		wantField string
	}{
		{
			name:      "rating below range",
			review:    domain.Review{RestaurantID: 1, ReviewerName: "Raj", Rating: 0},
			dbErr:     &pq.Error{Code: "23514", Constraint: "reviews_rating_check"},
			wantField: "rating",
		},
		{
			name:      "rating above range",
			review:    domain.Review{RestaurantID: 1, ReviewerName: "Raj", Rating: 6},
			dbErr:     &pq.Error{Code: "23514", Constraint: "reviews_rating_check"},
			wantField: "rating",
		},
		{
			name:      "unknown restaurant",
			review:    domain.Review{RestaurantID: 99, ReviewerName: "Raj", Rating: 3},
			dbErr:     &pq.Error{Code: "23503", Constraint: "reviews_restaurant_id_fkey"},
			wantField: "restaurant_id",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			rev := testCase.review

			mock.ExpectQuery("INSERT INTO reviews").
				WithArgs(rev.RestaurantID, rev.ReviewerName, rev.Rating, rev.Comment).
				WillReturnError(testCase.dbErr)

			err := repo.InsertReview(context.Background(), &rev)
			assert.ErrorIs(t, err, ErrConstraint)
			assert.NotErrorIs(t, err, ErrDuplicate)

			var cerr *ConstraintError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, testCase.wantField, cerr.Field)
			assert.Zero(t, rev.ID)
		})
	}
}

func TestInsertReview_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(3, "Raj", 4, "Great").
		WillReturnRows(sqlmock.NewRows([]string{"id", "review_date"}).AddRow(int64(11), when))

	rev := domain.Review{RestaurantID: 3, ReviewerName: "Raj", Rating: 4, Comment: "Great"}
	require.NoError(t, repo.InsertReview(context.Background(), &rev))
	assert.Equal(t, int64(11), rev.ID)
	assert.Equal(t, when, rev.ReviewDate)
}

func TestUpdateRestaurant(t *testing.T) {
	tests := []struct {
		name           string
		replacePicture bool
		rowsAffected   int64
		wantErr        error
	}{
		{name: "keeps picture", replacePicture: false, rowsAffected: 1},
		{name: "replaces picture", replacePicture: true, rowsAffected: 1},
		{name: "missing id", replacePicture: false, rowsAffected: 0, wantErr: ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			rest := &domain.Restaurant{ID: 5, Title: "T", Cuisines: "Thai", Area: "A", GoogleMapLink: "L", Picture: []byte{1, 2}}

			if testCase.replacePicture {
				mock.ExpectExec(`UPDATE restaurants\s+SET title = \$1, cuisines = \$2, area = \$3, google_map_link = \$4, price_per_person = \$5, restaurant_picture = \$6`).
					WithArgs("T", "Thai", "A", "L", nil, []byte{1, 2}, 5).
					WillReturnResult(sqlmock.NewResult(0, testCase.rowsAffected))
			} else {
				mock.ExpectExec(`UPDATE restaurants\s+SET title = \$1, cuisines = \$2, area = \$3, google_map_link = \$4, price_per_person = \$5\s+WHERE id = \$6`).
					WithArgs("T", "Thai", "A", "L", nil, 5).
					WillReturnResult(sqlmock.NewResult(0, testCase.rowsAffected))
			}

			err := repo.UpdateRestaurant(context.Background(), rest, testCase.replacePicture)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateReview(t *testing.T) {
	t.Run("updates rating and comment only", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(`UPDATE reviews SET rating = \$1, comment = \$2 WHERE id = \$3`).
			WithArgs(5, "Even better", 9).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateReview(context.Background(), 9, 5, "Even better"))
	})

	t.Run("missing id", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec("UPDATE reviews").
			WithArgs(3, "", 404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateReview(context.Background(), 404, 3, ""), ErrNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec("UPDATE reviews").
			WithArgs(6, "", 1).
			WillReturnError(&pq.Error{Code: "23514", Constraint: "reviews_rating_check"})

		assert.ErrorIs(t, repo.UpdateReview(context.Background(), 1, 6, ""), ErrConstraint)
	})
}

func TestDeleteRestaurant_Cascades(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reviews WHERE restaurant_id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM restaurants WHERE id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteRestaurant(context.Background(), 4))
}

func TestDeleteRestaurant_MissingIDIsNoop(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reviews").WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM restaurants").WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteRestaurant(context.Background(), 42))
}

func TestDeleteRestaurant_RollsBackOnFailure(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reviews").WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM restaurants").WithArgs(4).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.DeleteRestaurant(context.Background(), 4)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestGetRestaurant(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery("SELECT id, title").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "cuisines", "area", "google_map_link", "added_by", "price_per_person", "restaurant_picture", "created_at"}).
				AddRow(int64(2), "Spice Hub", "Indian", "Indiranagar", "https://maps/x", "Raj", nil, []byte("img"), time.Now()))

		rest, err := repo.GetRestaurant(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Spice Hub", rest.Title)
		assert.Nil(t, rest.PricePerPerson)
		assert.Equal(t, []byte("img"), rest.Picture)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery("SELECT id, title").WithArgs(3).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRestaurant(context.Background(), 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInsertUser_Duplicate(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Raj").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(6), time.Now()))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Raj").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_name_key"})

	user, err := repo.InsertUser(context.Background(), "Raj")
	require.NoError(t, err)
	assert.Equal(t, "Raj", user.Name)

	_, err = repo.InsertUser(context.Background(), "Raj")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestDeleteUser_Idempotent(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(`DELETE FROM users WHERE name = \$1`).WithArgs("Ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteUser(context.Background(), "Ghost"))
}

func TestListUsers_SortedByName(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, created_at FROM users ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(4), "Anish", now).
			AddRow(int64(1), "Mahantesh", now).
			AddRow(int64(5), "Raj", now))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Anish", users[0].Name)
	assert.Equal(t, "Raj", users[2].Name)
}

func TestCountUsers(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: ErrTimeout},
		{name: "connection class", err: &pq.Error{Code: "08006", Message: "connection failure"}, want: ErrConnection},
		{name: "unique", err: &pq.Error{Code: "23505"}, want: ErrDuplicate},
		{name: "check", err: &pq.Error{Code: "23514"}, want: ErrConstraint},
		{name: "other", err: sql.ErrConnDone, want: ErrStorage},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.ErrorIs(t, classify("op", testCase.err), testCase.want)
		})
	}
	assert.NoError(t, classify("op", nil))
}
