package format

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// GlobalLookup reports whether name resolves to a predefined binding in the
// enclosing environment, the information §4.5.5's NaN/Infinity fallback
// chain needs (it prefers the bare identifier, then a Number.* property,
// then a guaranteed-safe expression).
type GlobalLookup func(name string) bool

// FormatNumber renders v as the shortest JavaScript source text that reads
// back to the same float64 value, per spec §4.5.5. raw is the literal's
// original source text; it is passed on to nonFiniteText but never read,
// so every rendering is derived from v alone; negativeZero records whether the
// source literal was syntactically `-0` (v itself cannot distinguish -0
// from 0 once boxed in an ordinary Go float comparison).
func FormatNumber(v float64, raw string, negativeZero bool, globals GlobalLookup) string {
	switch {
	case math.IsNaN(v):
		return nonFiniteText(raw, "NaN", globals)
	case math.IsInf(v, 1):
		return nonFiniteText(raw, "Infinity", globals)
	case math.IsInf(v, -1):
		return "-" + nonFiniteText(raw, "Infinity", globals)
	}

	if v == 0 {
		if negativeZero {
			return "-0"
		}
		return "0"
	}

	return shortestDecimal(v)
}

func nonFiniteText(raw, name string, globals GlobalLookup) string {
	if globals != nil && globals(name) {
		return name
	}
	if globals != nil && globals("Number") {
		switch name {
		case "NaN":
			return "Number.NaN"
		case "Infinity":
			return "Number.POSITIVE_INFINITY"
		}
	}
	if name == "NaN" {
		return "(+'x')"
	}
	return "(1/0)"
}

// shortestDecimal implements §4.5.5's decimal/exponent/hex comparison.
// strconv.FormatFloat with prec -1 derives the shortest fixed-point digit
// string that reads back to v exactly; apd.Context.Reduce then strips that
// string's trailing zeros into an exponent so the cost of exponential
// notation can be measured directly, and for integral values a hexadecimal
// rendering is compared too.
func shortestDecimal(v float64) string {
	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	best := fixed

	if dec, _, err := apd.NewFromString(fixed); err == nil {
		var reduced apd.Decimal
		if zeros, _, err := apd.BaseContext.Reduce(&reduced, dec); err == nil && zeros >= 3 {
			sign := ""
			if reduced.Negative {
				sign = "-"
			}
			exp := sign + reduced.Coeff.String() + "e" + strconv.Itoa(int(reduced.Exponent))
			if len(exp) < len(best) {
				best = exp
			}
		}
	}

	if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
		if hex := hexForm(int64(v)); len(hex) < len(best) {
			best = hex
		}
	}

	return best
}

func hexForm(n int64) string {
	if n < 0 {
		return "-0x" + strconv.FormatInt(-n, 16)
	}
	return "0x" + strconv.FormatInt(n, 16)
}
