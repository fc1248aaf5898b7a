package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/dungjk/jsmin/rename"
)

func TestLoadAppliesEnvDefaultsWithEmptyPath(t *testing.T) {
	s, err := Load("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.OutputMode, SingleLine))
	qt.Assert(t, qt.Equals(s.IndentSpaces, 4))
	qt.Assert(t, qt.IsTrue(s.InlineSafeStrings))
	qt.Assert(t, qt.Equals(s.WarningLevel, 4))
	qt.Assert(t, qt.Equals(s.LocalRenaming, rename.None))
}

func TestLoadReadsYAMLFile(t *testing.T) {
	// operator_spaces/mac_safari_quirks/rename_pairs carry no envDefault
	// tag, so env.Parse leaves them exactly as YAML set them whenever the
	// corresponding environment variable is unset — unlike a field such as
	// indent_spaces, whose envDefault tag competes with a YAML-set value
	// whenever the OS variable itself isn't present.
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.yaml")
	yamlDoc := "operator_spaces: true\nmac_safari_quirks: true\nrename_pairs:\n  - from: a\n    to: b\n"
	qt.Assert(t, qt.IsNil(os.WriteFile(p, []byte(yamlDoc), 0o644)))

	s, err := Load(p)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(s.OperatorSpaces))
	qt.Assert(t, qt.IsTrue(s.MacSafariQuirks))
	qt.Assert(t, qt.DeepEquals(s.RenamePairs, []RenamePair{{From: "a", To: "b"}}))
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.yaml")
	qt.Assert(t, qt.IsNil(os.WriteFile(p, []byte("indent_spaces: 2\n"), 0o644)))

	t.Setenv("JSMIN_INDENT_SPACES", "8")

	s, err := Load(p)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.IndentSpaces, 8))
}

func TestLoadRejectsUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestMultilineResolvesOutputMode(t *testing.T) {
	s := &Settings{OutputMode: MultiLine}
	qt.Assert(t, qt.IsTrue(s.Multiline()))
	s.OutputMode = SingleLine
	qt.Assert(t, qt.IsFalse(s.Multiline()))
}

func TestStrictDefaultsToAutoForUnrecognizedValue(t *testing.T) {
	s := &Settings{StrictModeName: "nonsense"}
	qt.Assert(t, qt.Equals(s.Strict(), StrictAuto))
	s.StrictModeName = "on"
	qt.Assert(t, qt.Equals(s.Strict(), StrictOn))
	s.StrictModeName = "off"
	qt.Assert(t, qt.Equals(s.Strict(), StrictOff))
}

func TestFormatDefaultsToJavaScript(t *testing.T) {
	s := &Settings{FormatName: "json"}
	qt.Assert(t, qt.Equals(s.Format(), FormatJSON))
	s.FormatName = "whatever"
	qt.Assert(t, qt.Equals(s.Format(), FormatJavaScript))
}

func TestResolveLocalRenamingMapsAllThreeNames(t *testing.T) {
	s := &Settings{LocalRenamingName: "keep_localization_vars"}
	s.resolveLocalRenaming()
	qt.Assert(t, qt.Equals(s.LocalRenaming, rename.KeepLocalizationVars))

	s = &Settings{LocalRenamingName: "hypercrunch"}
	s.resolveLocalRenaming()
	qt.Assert(t, qt.Equals(s.LocalRenaming, rename.Hypercrunch))

	s = &Settings{LocalRenamingName: ""}
	s.resolveLocalRenaming()
	qt.Assert(t, qt.Equals(s.LocalRenaming, rename.None))
}

func TestFormatOptionsCarriesFieldsThrough(t *testing.T) {
	s := &Settings{
		OutputMode:        MultiLine,
		IndentSpaces:      2,
		ASCIIOnly:         true,
		InlineSafeStrings: true,
		TermSemicolons:    true,
		OperatorSpaces:    true,
		MacSafariQuirks:   true,
	}
	opts := s.FormatOptions(nil)
	qt.Assert(t, qt.IsTrue(opts.Multiline))
	qt.Assert(t, qt.Equals(opts.IndentSpaces, 2))
	qt.Assert(t, qt.IsTrue(opts.ASCIIOnly))
	qt.Assert(t, qt.IsTrue(opts.InlineSafeStrings))
	qt.Assert(t, qt.IsTrue(opts.TermSemicolons))
	qt.Assert(t, qt.IsTrue(opts.OperatorSpaces))
	qt.Assert(t, qt.IsTrue(opts.MacSafariQuirks))
}
