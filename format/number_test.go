package format

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFormatNumberBasic(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{100, "100"},
		{1.5, "1.5"},
		{0.5, "0.5"},
	}
	for _, c := range cases {
		got := FormatNumber(c.v, "", false, nil)
		qt.Assert(t, qt.Equals(got, c.want))
	}
}

func TestFormatNumberNegativeZero(t *testing.T) {
	got := FormatNumber(0, "-0", true, nil)
	qt.Assert(t, qt.Equals(got, "-0"))
}

func TestFormatNumberExponentShortensLongTrailingZeros(t *testing.T) {
	got := FormatNumber(100000, "100000", false, nil)
	qt.Assert(t, qt.Equals(got, "1e5"))
}

func TestFormatNumberHexShortensLargeIntegers(t *testing.T) {
	got := FormatNumber(123456789012345, "123456789012345", false, nil)
	qt.Assert(t, qt.Equals(got, "0x7048860ddf79"))
}

func TestFormatNumberNaNFallsBackToGlobal(t *testing.T) {
	globals := func(name string) bool { return name == "NaN" }
	got := FormatNumber(nan(), "NaN", false, globals)
	qt.Assert(t, qt.Equals(got, "NaN"))
}

func TestFormatNumberNaNWithoutGlobalUsesExpression(t *testing.T) {
	got := FormatNumber(nan(), "NaN", false, nil)
	qt.Assert(t, qt.Equals(got, "(+'x')"))
}

func TestFormatNumberInfinityPrefersNumberDotProperty(t *testing.T) {
	globals := func(name string) bool { return name == "Number" }
	got := FormatNumber(inf(1), "Infinity", false, globals)
	qt.Assert(t, qt.Equals(got, "Number.POSITIVE_INFINITY"))
}

func TestFormatNumberNegativeInfinity(t *testing.T) {
	got := FormatNumber(inf(-1), "Infinity", false, nil)
	qt.Assert(t, qt.Equals(got, "-(1/0)"))
}

// nan/inf avoid importing math directly in every case table above, keeping
// the test data declarations terse.
func nan() float64   { return zeroDivZero() }
func zeroDivZero() float64 {
	z := 0.0
	return z / z
}
func inf(sign int) float64 {
	if sign < 0 {
		return -1e308 * 10
	}
	return 1e308 * 10
}
