package result_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bettererror "github.com/xgx-io/xgx-better-error"
	"github.com/xgx-io/xgx-better-error/result"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

func TestMultiple(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      []result.Outcome
		want    any
		wantErr error
	}{
		{
			name: "all success returns last value",
			in:   []result.Outcome{result.Ok(1), result.Ok("two"), result.Ok(true)},
			want: true,
		},
		{
			name:    "first failure wins over later success",
			in:      []result.Outcome{result.Ok(1), result.Err[int](errFirst), result.Ok(true)},
			wantErr: errFirst,
		},
		{
			name:    "first failure wins over later failure",
			in:      []result.Outcome{result.Err[int](errFirst), result.Err[bool](errSecond)},
			wantErr: errFirst,
		},
		{
			name:    "failure in last position",
			in:      []result.Outcome{result.Ok(1), result.Ok("x"), result.Err[bool](errSecond)},
			wantErr: errSecond,
		},
		{
			name: "single success",
			in:   []result.Outcome{result.Ok(true)},
			want: true,
		},
		{
			name:    "single failure",
			in:      []result.Outcome{result.Err[bool](errFirst)},
			wantErr: errFirst,
		},
		{
			name:    "empty input",
			in:      nil,
			wantErr: result.ErrNoResults,
		},
		{
			name:    "nil outcome",
			in:      []result.Outcome{result.Ok(1), nil},
			wantErr: result.ErrNilError,
		},
		{
			name:    "last value of another type",
			in:      []result.Outcome{result.Ok(true), result.Ok("not a bool")},
			wantErr: result.ErrTypeMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := result.Multiple[bool](tc.in...)
			if tc.wantErr != nil {
				require.True(t, r.IsErr())
				assert.ErrorIs(t, r.Err(), tc.wantErr)
				return
			}
			require.True(t, r.IsOk(), "unexpected error: %v", r.Err())
			assert.Equal(t, tc.want, r.Value())
		})
	}
}

func TestMultiple_FailurePreservesIdentity(t *testing.T) {
	t.Parallel()

	enriched := bettererror.New("upstream failed", bettererror.WithCustomID("e-1"))
	r := result.Multiple[string](
		result.Ok(1),
		result.Err[int](enriched),
		result.Err[string](errSecond),
	)

	require.True(t, r.IsErr())
	be, ok := bettererror.As(r.Err())
	require.True(t, ok)
	assert.Same(t, enriched, be)
	assert.Equal(t, "e-1", be.ID())
}

func TestMultiple_NilLastValueOfInterfaceType(t *testing.T) {
	t.Parallel()

	r := result.Multiple[error](result.Ok(1), result.Ok[error](nil))
	require.True(t, r.IsOk())
	assert.Nil(t, r.Value())
}

// customOutcome is an Outcome not produced by this package.
type customOutcome struct{ v any }

func (c customOutcome) IsErr() bool { return false }
func (c customOutcome) Err() error  { return nil }
func (c customOutcome) Any() any    { return c.v }

func TestMultiple_ForeignOutcome(t *testing.T) {
	t.Parallel()

	r := result.Multiple[int](result.Ok("a"), customOutcome{v: 7})
	require.True(t, r.IsOk())
	assert.Equal(t, 7, r.Value())

	r = result.Multiple[int](customOutcome{v: nil})
	require.True(t, r.IsErr(), "nil is not an int")
	assert.ErrorIs(t, r.Err(), result.ErrTypeMismatch)
}

func TestMultiple_NilLastValueNeedsNillableType(t *testing.T) {
	t.Parallel()

	ptr := result.Multiple[*int](customOutcome{v: nil})
	require.True(t, ptr.IsOk())
	assert.Nil(t, ptr.Value())

	iface := result.Multiple[fmt.Stringer](result.Ok(1), customOutcome{v: nil})
	require.True(t, iface.IsOk())
	assert.Nil(t, iface.Value())

	for _, r := range []result.Result[string]{
		result.Multiple[string](customOutcome{v: nil}),
		result.Multiple[string](result.Ok(1), result.Ok[any](nil)),
	} {
		require.True(t, r.IsErr())
		assert.ErrorIs(t, r.Err(), result.ErrTypeMismatch)
	}
}

func TestMultipleN(t *testing.T) {
	t.Parallel()

	r2 := result.Multiple2(result.Ok(1), result.Ok("two"))
	assert.Equal(t, "two", r2.Value())

	r3 := result.Multiple3(result.Ok(1), result.Err[string](errFirst), result.Ok(3.5))
	assert.ErrorIs(t, r3.Err(), errFirst)
	assert.Equal(t, 0.0, r3.Value())

	r4 := result.Multiple4(result.Ok(1), result.Ok("b"), result.Ok(true), result.Ok([]int{4}))
	assert.Equal(t, []int{4}, r4.Value())

	r5 := result.Multiple5(result.Ok(1), result.Ok(2), result.Ok(3), result.Ok(4), result.Err[int](errSecond))
	assert.ErrorIs(t, r5.Err(), errSecond)
}
