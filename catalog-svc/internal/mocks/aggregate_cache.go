package mocks

import (
	"context"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AggregateCache is a testify mock of the AggregateCache interface.
type AggregateCache struct {
	mock.Mock
}

func (_m *AggregateCache) GetRestaurants(ctx context.Context, f domain.Filter) ([]domain.RestaurantView, int64, bool, error) {
	ret := _m.Called(ctx, f)
	var r0 []domain.RestaurantView
	if rf, ok := ret.Get(0).(func(context.Context, domain.Filter) []domain.RestaurantView); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantView)
	}
	var r1 int64
	if rf, ok := ret.Get(1).(func(context.Context, domain.Filter) int64); ok {
		r1 = rf(ctx, f)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int64)
	}
	var r2 bool
	if rf, ok := ret.Get(2).(func(context.Context, domain.Filter) bool); ok {
		r2 = rf(ctx, f)
	} else if ret.Get(2) != nil {
		r2 = ret.Get(2).(bool)
	}
	var r3 error
	if rf, ok := ret.Get(3).(func(context.Context, domain.Filter) error); ok {
		r3 = rf(ctx, f)
	} else {
		r3 = ret.Error(3)
	}
	return r0, r1, r2, r3
}

func (_m *AggregateCache) SetRestaurants(ctx context.Context, gen int64, f domain.Filter, views []domain.RestaurantView) error {
	ret := _m.Called(ctx, gen, f, views)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.Filter, []domain.RestaurantView) error); ok {
		r0 = rf(ctx, gen, f, views)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *AggregateCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// NewAggregateCache registers a cleanup that asserts the mock's expectations.
func NewAggregateCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *AggregateCache {
	m := &AggregateCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
