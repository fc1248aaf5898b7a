// Package config holds the minifier's external configuration surface
// (spec §6's option table) and its YAML/environment loading.
package config

import (
	"github.com/dungjk/jsmin/format"
	"github.com/dungjk/jsmin/rename"
)

// OutputMode selects whether the serializer emits line breaks and
// indentation.
type OutputMode string

const (
	SingleLine OutputMode = "single_line"
	MultiLine  OutputMode = "multi_line"
)

// StrictMode overrides or defers to directive-prologue ("use strict")
// detection.
type StrictMode string

const (
	StrictAuto StrictMode = "auto"
	StrictOn   StrictMode = "on"
	StrictOff  StrictMode = "off"
)

// SourceFormat constrains the accepted AST shape (spec §6's JSON-mode
// supplement): JSON mode only ever sees object/array/constant literals.
type SourceFormat string

const (
	FormatJavaScript SourceFormat = "javascript"
	FormatJSON       SourceFormat = "json"
)

// RenamePair pre-seeds a renamer.Options.MustRenameBindings-independent
// alternate name for one specific source identifier (spec §6's
// `rename_pairs`).
type RenamePair struct {
	From string `yaml:"from" env:"FROM"`
	To   string `yaml:"to" env:"TO"`
}

// Settings is the complete external configuration surface, one field per
// row of spec §6's option table, loaded from YAML with environment
// variable overrides (see load.go).
type Settings struct {
	OutputMode     OutputMode `yaml:"output_mode" env:"JSMIN_OUTPUT_MODE" envDefault:"single_line"`
	IndentSpaces   int        `yaml:"indent_spaces" env:"JSMIN_INDENT_SPACES" envDefault:"4"`
	OperatorSpaces bool       `yaml:"operator_spaces" env:"JSMIN_OPERATOR_SPACES"`
	TermSemicolons bool       `yaml:"term_semicolons" env:"JSMIN_TERM_SEMICOLONS"`

	InlineSafeStrings bool `yaml:"inline_safe_strings" env:"JSMIN_INLINE_SAFE_STRINGS" envDefault:"true"`

	LocalRenaming         rename.LocalRenaming `yaml:"-"`
	LocalRenamingName     string               `yaml:"local_renaming" env:"JSMIN_LOCAL_RENAMING" envDefault:"none"`
	PreserveFunctionNames bool                 `yaml:"preserve_function_names" env:"JSMIN_PRESERVE_FUNCTION_NAMES"`
	RenamePairs           []RenamePair         `yaml:"rename_pairs"`
	NoAutoRename          []string             `yaml:"no_auto_rename" env:"JSMIN_NO_AUTO_RENAME" envSeparator:","`

	MacSafariQuirks              bool `yaml:"mac_safari_quirks" env:"JSMIN_MAC_SAFARI_QUIRKS"`
	IgnoreConditionalCompilation bool `yaml:"ignore_conditional_compilation" env:"JSMIN_IGNORE_CONDITIONAL_COMPILATION"`

	StrictModeName string `yaml:"strict_mode" env:"JSMIN_STRICT_MODE" envDefault:"auto"`

	WarningLevel int `yaml:"warning_level" env:"JSMIN_WARNING_LEVEL" envDefault:"4"`

	FormatName string `yaml:"format" env:"JSMIN_FORMAT" envDefault:"javascript"`

	// ASCIIOnly forces non-ASCII characters in string literals to
	// `\uXXXX` escapes; not in spec §6's table but implied by
	// `inline_safe_strings`' neighboring concerns and carried through to
	// format.Options.ASCIIOnly.
	ASCIIOnly bool `yaml:"ascii_only" env:"JSMIN_ASCII_ONLY"`

	// RewriteBooleans and PruneDeadGeneratedBindings gate the Final-Pass
	// Rewriter's two duties; not named in spec §6's table but exposed as
	// their own toggles since either can be undesirable for a caller doing
	// debug-friendly output (both default on for ordinary minification).
	RewriteBooleans            bool `yaml:"rewrite_booleans" env:"JSMIN_REWRITE_BOOLEANS" envDefault:"true"`
	PruneDeadGeneratedBindings bool `yaml:"prune_dead_generated_bindings" env:"JSMIN_PRUNE_DEAD_GENERATED_BINDINGS" envDefault:"true"`
}

// Multiline reports whether OutputMode selects multi-line emission,
// resolving the zero value (unset) to single-line.
func (s *Settings) Multiline() bool { return s.OutputMode == MultiLine }

// Strict resolves StrictModeName into the typed StrictMode enum, defaulting
// to StrictAuto for an empty or unrecognized value.
func (s *Settings) Strict() StrictMode {
	switch StrictMode(s.StrictModeName) {
	case StrictOn:
		return StrictOn
	case StrictOff:
		return StrictOff
	default:
		return StrictAuto
	}
}

// Format resolves FormatName, defaulting to FormatJavaScript.
func (s *Settings) Format() SourceFormat {
	if SourceFormat(s.FormatName) == FormatJSON {
		return FormatJSON
	}
	return FormatJavaScript
}

// resolveLocalRenaming maps LocalRenamingName onto rename.LocalRenaming,
// called once by Load after YAML/env decoding (the yaml/env tags target the
// string form since rename.LocalRenaming has no text (un)marshaler of its
// own, consistent with spec §6's option being a closed enumeration rather
// than a structured value).
func (s *Settings) resolveLocalRenaming() {
	switch s.LocalRenamingName {
	case "hypercrunch":
		s.LocalRenaming = rename.Hypercrunch
	case "keep_localization_vars":
		s.LocalRenaming = rename.KeepLocalizationVars
	default:
		s.LocalRenaming = rename.None
	}
}

// FormatOptions derives the format.Options this Settings implies, for
// callers assembling the pipeline directly (minify.Minify does this
// internally).
func (s *Settings) FormatOptions(globals format.GlobalLookup) format.Options {
	return format.Options{
		Multiline:                    s.Multiline(),
		IndentSpaces:                 s.IndentSpaces,
		ASCIIOnly:                    s.ASCIIOnly,
		InlineSafeStrings:            s.InlineSafeStrings,
		TermSemicolons:               s.TermSemicolons,
		OperatorSpaces:               s.OperatorSpaces,
		Globals:                      globals,
		MacSafariQuirks:              s.MacSafariQuirks,
		IgnoreConditionalCompilation: s.IgnoreConditionalCompilation,
	}
}
