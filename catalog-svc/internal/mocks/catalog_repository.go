package mocks

import (
	"context"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CatalogRepository is a testify mock of the CatalogRepository interface.
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) InsertRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error) {
	ret := _m.Called(ctx, rest)
	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Restaurant) int64); ok {
		r0 = rf(ctx, rest)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Restaurant) error); ok {
		r1 = rf(ctx, rest)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Restaurant); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant, replacePicture bool) error {
	ret := _m.Called(ctx, rest, replacePicture)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Restaurant, bool) error); ok {
		r0 = rf(ctx, rest, replacePicture)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	ret := _m.Called(ctx, review)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Review) error); ok {
		r0 = rf(ctx, review)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogRepository) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Review
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Review); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	ret := _m.Called(ctx, id, rating, comment)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int, string) error); ok {
		r0 = rf(ctx, id, rating, comment)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogRepository) InsertUser(ctx context.Context, name string) (*domain.User, error) {
	ret := _m.Called(ctx, name)
	var r0 *domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.User); ok {
		r0 = rf(ctx, name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) DeleteUser(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, name)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogRepository) CountUsers(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)
	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context) int); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if rf, ok := ret.Get(0).(func(context.Context) []domain.User); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) ListRestaurantsWithAggregates(ctx context.Context, filter domain.Filter) ([]domain.RestaurantView, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context, domain.Filter) []domain.RestaurantView); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.Filter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.ReviewView
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.ReviewView); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ReviewView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, restaurantID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) AverageRating(ctx context.Context, restaurantID int64) (float64, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 float64
	if rf, ok := ret.Get(0).(func(context.Context, int64) float64); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(float64)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, restaurantID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 map[string]int
	if rf, ok := ret.Get(0).(func(context.Context, int64) map[string]int); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, restaurantID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) Stats(ctx context.Context) (domain.CatalogStats, error) {
	ret := _m.Called(ctx)
	var r0 domain.CatalogStats
	if rf, ok := ret.Get(0).(func(context.Context) domain.CatalogStats); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.CatalogStats)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) ListAreas(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogRepository) ListCuisines(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// NewCatalogRepository registers a cleanup that asserts the mock's expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
