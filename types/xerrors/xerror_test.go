package xerrors

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Wrap(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)

	//second xerror
	//	first xerror
	//	base error
	fmt.Println(xerr1)
	require.Equal(t, "second xerror\n\tfirst xerror\n\tbase error", xerr1.Error())

	xerr0 = NewOrdinary("first xerror").Wrapf("initial error: %s", err.Error())
	xerr1 = NewOrdinary("second xerror").Wrap(xerr0)

	//second xerror
	//	first xerror
	//	initial error: base error
	fmt.Println(xerr1)
	require.Equal(t, "second xerror\n\tfirst xerror\n\tinitial error: base error", xerr1.Error())
}

func Test_Contains(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)
	xerrNotContained := NewOrdinary("third xerror").Wrap(err)

	require.True(t, xerr1.Contains(xerr0))
	require.False(t, xerr1.Contains(xerrNotContained))
}

func Test_Codes(t *testing.T) {
	require.Equal(t, ErrCodeDomain, ErrNonPositiveLn.Code())
	require.Equal(t, ErrCodeDomain, ErrLn36OutOfBand.Code())
	require.Equal(t, ErrCodeOverflow, ErrExpOutOfBounds.Code())
	require.Equal(t, ErrCodeOverflow, ErrPowProductOutOfBounds.Code())
	require.Equal(t, ErrCodeInvalidPool, ErrWeightSum.Code())
	require.Equal(t, ErrCodeInvalidPool, ErrZeroBalance.Code())

	require.True(t, ErrWeightSum.Equal(ErrLengthMismatch))
	require.False(t, ErrWeightSum.Equal(ErrExpOutOfBounds))
	require.ErrorContains(t, ErrWeightSum, "weights do not sum to one unit")

	wrapped := ErrZeroBalance.Wrapf("asset %d", 1)
	require.True(t, wrapped.Contains(ErrInvalidPool))
	require.ErrorContains(t, wrapped, "zero balance")
	require.ErrorContains(t, wrapped, "asset 1")
}

func Test_From(t *testing.T) {
	require.Nil(t, From(nil))
	require.Equal(t, ErrOverFlow, From(ErrOverFlow))

	xerr := From(errors.New("plain"))
	require.Equal(t, ErrCodeOrdinary, xerr.Code())
	require.Equal(t, "plain", xerr.Msg())
}

func Test_Is(t *testing.T) {
	base := errors.New("root cause")
	xerr := ErrInvalidInput.Wrap(base)
	require.ErrorIs(t, xerr, base)
	require.ErrorIs(t, ErrExpOutOfBounds, ErrExpOutOfBounds)

	wrapped := ErrWeightSum.Wrapf("sum: %s", "0.9")
	require.ErrorIs(t, wrapped, ErrWeightSum)
	require.ErrorIs(t, wrapped, ErrInvalidPool)
	require.NotErrorIs(t, wrapped, ErrZeroBalance)
	require.NotErrorIs(t, wrapped, ErrOverFlow)
}
