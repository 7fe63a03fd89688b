package mocks

import (
	"github.com/stretchr/testify/mock"
)

// QRGenerator is a testify mock of the QRGenerator interface.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(content string) ([]byte, error) {
	ret := _m.Called(content)
	var r0 []byte
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(content)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(content)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// NewQRGenerator registers a cleanup that asserts the mock's expectations.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
