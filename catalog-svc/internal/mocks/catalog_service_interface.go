package mocks

import (
	"context"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CatalogServiceInterface is a testify mock of the CatalogServiceInterface interface.
type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) CreateRestaurantWithFirstReview(ctx context.Context, rest *domain.Restaurant, first *domain.FirstReview) (int64, error) {
	ret := _m.Called(ctx, rest, first)
	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Restaurant, *domain.FirstReview) int64); ok {
		r0 = rf(ctx, rest, first)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Restaurant, *domain.FirstReview) error); ok {
		r1 = rf(ctx, rest, first)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogServiceInterface) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
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

func (_m *CatalogServiceInterface) ListRestaurants(ctx context.Context) ([]domain.RestaurantView, error) {
	ret := _m.Called(ctx)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context) []domain.RestaurantView); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogServiceInterface) RecentRestaurants(ctx context.Context, n int) ([]domain.RestaurantView, error) {
	ret := _m.Called(ctx, n)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.RestaurantView); ok {
		r0 = rf(ctx, n)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, n)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogServiceInterface) SearchRecent(ctx context.Context, area string, cuisine string, n int) ([]domain.RestaurantView, error) {
	ret := _m.Called(ctx, area, cuisine, n)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int) []domain.RestaurantView); ok {
		r0 = rf(ctx, area, cuisine, n)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, int) error); ok {
		r1 = rf(ctx, area, cuisine, n)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogServiceInterface) Search(ctx context.Context, area string, cuisine string) ([]domain.RestaurantView, error) {
	ret := _m.Called(ctx, area, cuisine)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []domain.RestaurantView); ok {
		r0 = rf(ctx, area, cuisine)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, area, cuisine)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *CatalogServiceInterface) EditRestaurant(ctx context.Context, rest *domain.Restaurant, picture []byte) error {
	ret := _m.Called(ctx, rest, picture)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Restaurant, []byte) error); ok {
		r0 = rf(ctx, rest, picture)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogServiceInterface) RemoveRestaurant(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogServiceInterface) AddReview(ctx context.Context, review *domain.Review) error {
	ret := _m.Called(ctx, review)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Review) error); ok {
		r0 = rf(ctx, review)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogServiceInterface) EditReview(ctx context.Context, reviewID int64, rating int, comment string) error {
	ret := _m.Called(ctx, reviewID, rating, comment)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int, string) error); ok {
		r0 = rf(ctx, reviewID, rating, comment)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogServiceInterface) ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error) {
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

func (_m *CatalogServiceInterface) AverageRating(ctx context.Context, restaurantID int64) (float64, error) {
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

func (_m *CatalogServiceInterface) RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error) {
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

func (_m *CatalogServiceInterface) AddUser(ctx context.Context, name string) (*domain.User, error) {
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

func (_m *CatalogServiceInterface) RemoveUser(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, name)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *CatalogServiceInterface) ListUsers(ctx context.Context) ([]domain.User, error) {
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

func (_m *CatalogServiceInterface) UserCount(ctx context.Context) (int, error) {
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

func (_m *CatalogServiceInterface) Stats(ctx context.Context) (domain.CatalogStats, error) {
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

func (_m *CatalogServiceInterface) Areas(ctx context.Context) ([]string, error) {
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

func (_m *CatalogServiceInterface) Cuisines(ctx context.Context) ([]string, error) {
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

func (_m *CatalogServiceInterface) CuisineOptions() []string {
	ret := _m.Called()
	var r0 []string
	if rf, ok := ret.Get(0).(func() []string); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

func (_m *CatalogServiceInterface) MapLinkQRCode(ctx context.Context, restaurantID int64) ([]byte, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, int64) []byte); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, restaurantID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// NewCatalogServiceInterface registers a cleanup that asserts the mock's expectations.
func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
