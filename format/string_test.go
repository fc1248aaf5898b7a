package format

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFormatStringPicksQuoteWithFewerEscapes(t *testing.T) {
	got := FormatString(`it's here`, false, false)
	qt.Assert(t, qt.Equals(got, `"it's here"`))

	got = FormatString(`she said "hi"`, false, false)
	qt.Assert(t, qt.Equals(got, `'she said "hi"'`))
}

func TestFormatStringEscapesControlChars(t *testing.T) {
	got := FormatString("a\nb\tc\rd", false, false)
	qt.Assert(t, qt.Equals(got, `"a\nb\tc\rd"`))
}

func TestFormatStringAsciiOnlyEscapesNonASCII(t *testing.T) {
	got := FormatString("caf\u00e9", true, false)
	qt.Assert(t, qt.Equals(got, `"caf\u00e9"`))
}

func TestFormatStringNonASCIIPassesThroughByDefault(t *testing.T) {
	got := FormatString("caf\u00e9", false, false)
	qt.Assert(t, qt.Equals(got, "\"caf\u00e9\""))
}

func TestFormatStringAsciiOnlySurrogatePair(t *testing.T) {
	got := FormatString("\U0001F600", true, false)
	qt.Assert(t, qt.Equals(got, `"\ud83d\ude00"`))
}

func TestFormatStringInlineSafeGuardsScriptClose(t *testing.T) {
	got := FormatString("</script>", false, true)
	qt.Assert(t, qt.Equals(got, `"<\/script>"`))
}

func TestFormatStringInlineSafeGuardsCDATAClose(t *testing.T) {
	got := FormatString("]]>", false, true)
	qt.Assert(t, qt.Equals(got, `"]\]>"`))
}

func TestFormatStringInlineHazardsNotGuardedWhenDisabled(t *testing.T) {
	got := FormatString("</script>", false, false)
	qt.Assert(t, qt.Equals(got, `"</script>"`))
}
