package mocks

import (
	"context"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Replicator is a testify mock of the Replicator interface.
type Replicator struct {
	mock.Mock
}

func (_m *Replicator) Sync(ctx context.Context, change domain.ChangeEvent) error {
	ret := _m.Called(ctx, change)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ChangeEvent) error); ok {
		r0 = rf(ctx, change)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// NewReplicator registers a cleanup that asserts the mock's expectations.
func NewReplicator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Replicator {
	m := &Replicator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
