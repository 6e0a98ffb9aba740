package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
)

func TestCombineAll(t *testing.T) {
	require := require.New(t)

	rs := []result.Result[int]{
		result.Success(1),
		result.Success(2),
		result.Success(3),
	}

	combined := CombineAll(rs)
	require.True(combined.IsSuccess())
	require.Equal([]int{1, 2, 3}, combined.Unwrap())
}

func TestCombineAllFailFast(t *testing.T) {
	require := require.New(t)
	errX := errors.New("x")

	rs := []result.Result[int]{
		result.Success(1),
		result.Success(2),
		result.Fail[int](errX),
		result.Success(3),
	}

	combined := CombineAll(rs)
	require.True(combined.IsFailure())
	require.ErrorIs(combined.Err(), errX)
}

func TestCombineAllLeftPriority(t *testing.T) {
	require := require.New(t)
	errA := errors.New("a")
	errB := errors.New("b")

	combined := CombineAll([]result.Result[int]{
		result.Fail[int](errA),
		result.Fail[int](errB),
	})
	require.ErrorIs(combined.Err(), errA)
	require.NotErrorIs(combined.Err(), errB)
}

func TestCombineAllEmpty(t *testing.T) {
	require := require.New(t)

	combined := CombineAll([]result.Result[int]{})
	require.True(combined.IsSuccess())
	require.NotNil(combined.Unwrap())
	require.Empty(combined.Unwrap())
}

func TestFirstSuccess(t *testing.T) {
	require := require.New(t)

	first := FirstSuccess([]result.Result[int]{
		result.Fail[int](errors.New("a")),
		result.Success(7),
		result.Success(8),
	})
	require.True(first.IsSuccess())
	require.Equal(7, first.Unwrap())
}

func TestFirstSuccessAggregatesAllFailures(t *testing.T) {
	require := require.New(t)
	errA := errors.New("a")
	errB := errors.New("b")

	first := FirstSuccess([]result.Result[int]{
		result.Fail[int](errA),
		result.Fail[int](errB),
	})
	require.True(first.IsFailure())

	var agg *result.AggregateError
	require.ErrorAs(first.Err(), &agg)
	require.Equal([]error{errA, errB}, agg.Errs)
	require.Equal([]error{errA, errB}, result.Errors(first.Err()))
}

func TestFirstSuccessEmpty(t *testing.T) {
	require := require.New(t)

	first := FirstSuccess([]result.Result[int]{})
	require.True(first.IsFailure())

	var agg *result.AggregateError
	require.ErrorAs(first.Err(), &agg)
	require.Empty(agg.Errs)
}

func TestPartition(t *testing.T) {
	require := require.New(t)
	errA := errors.New("a")

	values, errs := Partition([]result.Result[int]{
		result.Success(1),
		result.Fail[int](errA),
		result.Success(2),
	})
	require.Equal([]int{1, 2}, values)
	require.Equal([]error{errA}, errs)
}

func TestPartitionTotality(t *testing.T) {
	require := require.New(t)

	rs := []result.Result[int]{
		result.Fail[int](errors.New("a")),
		result.Success(1),
		result.Fail[int](errors.New("b")),
		result.Fail[int](errors.New("c")),
		result.Success(2),
	}
	values, errs := Partition(rs)
	require.Len(values, 2)
	require.Len(errs, 3)
	require.Equal(len(rs), len(values)+len(errs))
	require.Equal([]int{1, 2}, values)
	require.Equal("a", errs[0].Error())
	require.Equal("b", errs[1].Error())
	require.Equal("c", errs[2].Error())
}

func TestSettleAll(t *testing.T) {
	require := require.New(t)
	errA := errors.New("a")

	settled := SettleAll([]result.Result[int]{
		result.Success(1),
		result.Fail[int](errA),
	})
	require.True(settled.IsSuccess())

	outcomes := settled.Unwrap()
	require.Len(outcomes, 2)
	require.Equal(StatusSuccess, outcomes[0].Status)
	require.Equal(1, outcomes[0].Value)
	require.Equal(StatusFailure, outcomes[1].Status)
	require.ErrorIs(outcomes[1].Reason, errA)
}

func TestSettleAllNeverFails(t *testing.T) {
	require := require.New(t)

	settled := SettleAll([]result.Result[int]{
		result.Fail[int](errors.New("a")),
		result.Fail[int](errors.New("b")),
	})
	require.True(settled.IsSuccess())
	require.Len(settled.Unwrap(), 2)
}
