package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrapf(ErrInvalidMapKey, "map key type %q", "bool")

	assert.True(t, Is(err, ErrInvalidMapKey))
	assert.False(t, Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), `"bool"`)
}

func TestIsTypeError(t *testing.T) {
	for _, sentinel := range []error{
		ErrUnknownType,
		ErrMissingSubType,
		ErrMissingKeyType,
		ErrUnknownContainer,
		ErrInvalidMapKey,
		ErrNotFound,
	} {
		assert.True(t, IsTypeError(Wrap(sentinel, "context")), "%v", sentinel)
	}

	assert.False(t, IsTypeError(ErrUnsupportedGraphKind))
	assert.False(t, IsTypeError(New("unrelated")))
	assert.False(t, IsTypeError(nil))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("struct %q", "MyStruct")))
	assert.False(t, IsNotFoundError(New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	// Format with stack trace
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestErrorChaining(t *testing.T) {
	base := New("base error")

	err := Wrap(base, "layer 1")
	err = Wrap(err, "layer 2")

	assert.True(t, Is(err, base))
	assert.Contains(t, err.Error(), "layer 2")
	assert.Contains(t, err.Error(), "layer 1")
	assert.Contains(t, err.Error(), "base error")
}

func ExampleNew() {
	err := New("something went wrong")
	fmt.Println(err)
	// Output: something went wrong
}

func ExampleWrap() {
	baseErr := New("pin not found")
	err := Wrap(baseErr, "failed to connect pins")
	fmt.Println(err)
	// Output: failed to connect pins: pin not found
}
