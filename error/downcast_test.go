package error_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errkit/contract"
	apiError "github.com/next-trace/scg-errkit/error"
)

func TestMissingFile_Capability(t *testing.T) {
	t.Parallel()

	var h contract.Error = &MissingFile{Path: "/tmp/x"}

	assert.Equal(t, "file not found", h.Description())

	d, ok := h.Detail()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/x", d)
	assert.Nil(t, h.Cause())
	assert.Equal(t, "file not found: /tmp/x", h.Error())

	for range 10 {
		assert.Equal(t, "file not found", h.Description(), "description must be stable")
	}
}

func TestWrappedError_DowncastOnlyOnCause(t *testing.T) {
	t.Parallel()

	inner := &MissingFile{Path: "/tmp/x"}
	var outer contract.Error = &WrappedError{Inner: inner}

	assert.False(t, apiError.Is[*MissingFile](outer))

	_, ok := apiError.DowncastRef[*MissingFile](outer)
	assert.False(t, ok)

	cause := outer.Cause()
	require.NotNil(t, cause)
	assert.True(t, apiError.Is[*MissingFile](cause))

	got, ok := apiError.DowncastRef[*MissingFile](cause)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.Equal(t, "wrapped failure: file not found: /tmp/x", outer.Error())
}

func TestUnrelatedTypes_NeverMatch(t *testing.T) {
	t.Parallel()

	var h contract.Error = A{N: 7}

	assert.True(t, apiError.Is[A](h))
	assert.False(t, apiError.Is[B](h))
	assert.False(t, apiError.Is[*A](h))
	assert.False(t, apiError.Is[contract.Error](h), "interface types never match a concrete type")

	b, ok := apiError.DowncastRef[B](h)
	assert.False(t, ok)
	assert.Equal(t, B{}, b)

	a, ok := apiError.DowncastRef[A](h)
	require.True(t, ok)
	assert.Equal(t, 7, a.N)
}

func TestIs_AgreesWithDowncastRef(t *testing.T) {
	t.Parallel()

	handles := []contract.Error{
		&MissingFile{Path: "p"},
		&WrappedError{},
		A{N: 1},
		B{N: 2},
		apiError.New("plain"),
	}

	for _, h := range handles {
		t.Run(fmt.Sprintf("%T", h), func(t *testing.T) {
			t.Parallel()

			_, okMissing := apiError.DowncastRef[*MissingFile](h)
			assert.Equal(t, apiError.Is[*MissingFile](h), okMissing)

			_, okA := apiError.DowncastRef[A](h)
			assert.Equal(t, apiError.Is[A](h), okA)

			_, okErr := apiError.DowncastRef[*apiError.Error](h)
			assert.Equal(t, apiError.Is[*apiError.Error](h), okErr)
		})
	}
}

func TestIs_NilHandle(t *testing.T) {
	t.Parallel()

	assert.False(t, apiError.Is[*MissingFile](nil))

	_, ok := apiError.DowncastRef[*MissingFile](nil)
	assert.False(t, ok)

	_, ok = apiError.DowncastMut[MissingFile](nil)
	assert.False(t, ok)
}

func TestDowncastMut_SharesUnderlyingValue(t *testing.T) {
	t.Parallel()

	var h contract.Error = &MissingFile{Path: "/tmp/x"}

	mf, ok := apiError.DowncastMut[MissingFile](h)
	require.True(t, ok)

	mf.Path = "/tmp/y"

	d, _ := h.Detail()
	assert.Equal(t, "/tmp/y", d)

	_, ok = apiError.DowncastMut[WrappedError](h)
	assert.False(t, ok)

	// Value-backed handles cannot be borrowed mutably.
	_, ok = apiError.DowncastMut[A](A{N: 1})
	assert.False(t, ok)
}

func TestFind_WalksChain(t *testing.T) {
	t.Parallel()

	inner := &MissingFile{Path: "/etc/app.yaml"}
	outer := apiError.Wrap(&WrappedError{Inner: inner}, "load config")

	got, ok := apiError.Find[*MissingFile](outer)
	require.True(t, ok)
	assert.Same(t, inner, got)

	std := fmt.Errorf("boot: %w", outer)
	got, ok = apiError.Find[*MissingFile](std)
	require.True(t, ok)
	assert.Same(t, inner, got)

	_, ok = apiError.Find[A](outer)
	assert.False(t, ok)

	_, ok = apiError.Find[A](nil)
	assert.False(t, ok)
}

func TestFind_DoesNotDescendJoinedErrors(t *testing.T) {
	t.Parallel()

	inner := &MissingFile{Path: "/tmp/x"}
	joined := errors.Join(errors.New("other"), inner)

	_, ok := apiError.Find[*MissingFile](joined)
	assert.False(t, ok)

	var viaAs *MissingFile
	require.ErrorAs(t, joined, &viaAs)
	assert.Same(t, inner, viaAs)
}
