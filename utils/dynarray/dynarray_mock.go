package dynarray

import "github.com/stretchr/testify/mock"

// MockSequence is a mock implementation of Sequence for testing.
type MockSequence[T any] struct {
	mock.Mock
}

var _ Sequence[any] = (*MockSequence[any])(nil)

func NewMockSequence[T any]() *MockSequence[T] {
	return &MockSequence[T]{}
}

func (m *MockSequence[T]) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockSequence[T]) Get(i int) T {
	args := m.Called(i)
	return args.Get(0).(T)
}

func (m *MockSequence[T]) Set(i int, v T) {
	m.Called(i, v)
}

func (m *MockSequence[T]) Append(v T) {
	m.Called(v)
}

func (m *MockSequence[T]) RemoveLast() {
	m.Called()
}

func (m *MockSequence[T]) Free() {
	m.Called()
}
