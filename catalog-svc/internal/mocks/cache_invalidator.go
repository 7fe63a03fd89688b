package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// CacheInvalidator is a testify mock of the CacheInvalidator interface.
type CacheInvalidator struct {
	mock.Mock
}

func (_m *CacheInvalidator) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// NewCacheInvalidator registers a cleanup that asserts the mock's expectations.
func NewCacheInvalidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *CacheInvalidator {
	m := &CacheInvalidator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
