package rename

import "github.com/dungjk/jsmin/token"

// startChars and bodyChars are spec §4.4 step 4's two alphabets: 54 valid
// identifier-start characters (letters, `_`, `$`) and the 10 additional
// digits valid only after the first character, for 64 total body symbols.
const startChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$"
const bodyChars = startChars + "0123456789"

// generator produces the base-54/64 short-name sequence a, b, …, z, A, …,
// Z, _, $, aa, ab, …, skipping any name that collides with avoid or is a
// reserved word, per spec §4.4 step 4.
type generator struct {
	next   []int // digit indices into startChars (digit 0) / bodyChars (digit > 0)
	strict bool
	avoid  map[string]bool
}

// newGenerator seeds a generator that will never emit a name in avoid or a
// reserved word (strict-mode reserved words included when strict is true).
func newGenerator(avoid map[string]bool, strict bool) *generator {
	return &generator{next: []int{0}, strict: strict, avoid: avoid}
}

// Next returns the next candidate name, advancing the internal counter
// regardless of whether the caller ultimately uses it (callers that reject
// a name for a reason the generator cannot know, e.g. a rename_pairs
// collision, must call Next again).
func (g *generator) Next() string {
	for {
		name := g.render()
		g.advance()
		if !token.IsReserved(name, g.strict) && !g.avoid[name] {
			return name
		}
	}
}

func (g *generator) render() string {
	buf := make([]byte, len(g.next))
	for i, d := range g.next {
		if i == 0 {
			buf[i] = startChars[d]
		} else {
			buf[i] = bodyChars[d]
		}
	}
	return string(buf)
}

// advance increments the digit counter like an odometer: the last digit
// cycles through bodyChars (64 symbols) before carrying; the first digit
// cycles through startChars (54 symbols). A carry out of the leftmost digit
// grows the name by one more start-char digit, inserted at the front.
func (g *generator) advance() {
	for i := len(g.next) - 1; i >= 0; i-- {
		limit := len(bodyChars)
		if i == 0 {
			limit = len(startChars)
		}
		g.next[i]++
		if g.next[i] < limit {
			return
		}
		g.next[i] = 0
	}
	g.next = append([]int{0}, g.next...)
}
