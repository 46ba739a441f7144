package compute_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/tour/compute"
)

func TestFactorial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero", n: 0, want: 1},
		{name: "one", n: 1, want: 1},
		{name: "five", n: 5, want: 120},
		{name: "ten", n: 10, want: 3628800},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := compute.Factorial(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFactorial_NegativeInput(t *testing.T) {
	t.Parallel()

	got, err := compute.Factorial(-1)
	require.Error(t, err)
	assert.Zero(t, got)

	var negative compute.NegativeInputError
	require.True(t, errors.As(err, &negative))
	assert.Equal(t, -1, negative.N)
	assert.Contains(t, negative.Error(), "-1")
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	got, err := compute.ParseQuantity(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestParseQuantity_NotNumeric(t *testing.T) {
	t.Parallel()

	got, err := compute.ParseQuantity("abc")
	require.Error(t, err)
	assert.Zero(t, got)

	var parse compute.ParseError
	require.True(t, errors.As(err, &parse))
	assert.Equal(t, "abc", parse.Input)

	// The underlying conversion error stays reachable.
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestClassifyAge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		age     int
		want    compute.AgeGroup
		wantErr bool
	}{
		{name: "newborn", age: 0, want: compute.AgeMinor},
		{name: "minor", age: 17, want: compute.AgeMinor},
		{name: "boundary adult", age: 18, want: compute.AgeAdult},
		{name: "adult", age: 25, want: compute.AgeAdult},
		{name: "negative", age: -5, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := compute.ClassifyAge(tc.age)
			if tc.wantErr {
				require.Error(t, err)

				var negative compute.NegativeAgeError
				require.True(t, errors.As(err, &negative))
				assert.Equal(t, tc.age, negative.Age)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGreet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello, Bob!", compute.Greet("Bob"))
}

func TestPower(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 9, compute.Power(3, 2), 1e-9)
	assert.InDelta(t, 27, compute.Power(3, 3), 1e-9)
	assert.InDelta(t, 16, compute.Power(2, 4), 1e-9)
}
