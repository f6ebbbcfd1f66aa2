package argv

import (
	"fmt"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// ErrorType categorizes parse-time errors. The category is stable API;
// callers can switch on it to decide how to report the failure.
type ErrorType string

const (
	// ErrorTypeUnknownFlag is a flag spelling absent from every declaration.
	ErrorTypeUnknownFlag ErrorType = "unknown_flag"
	// ErrorTypeGroupedNonSwitch is a grouped short flag whose resolved
	// option is not a switch.
	ErrorTypeGroupedNonSwitch ErrorType = "grouped_non_switch"
	// ErrorTypeMissingParameter is a value-taking option with too few
	// following values for its declared arity.
	ErrorTypeMissingParameter ErrorType = "missing_parameter"
	// ErrorTypeMissingPositional means fewer positional values were
	// supplied than declared.
	ErrorTypeMissingPositional ErrorType = "missing_positional"
	// ErrorTypeMissingTrail is a one-or-more trail with zero values.
	ErrorTypeMissingTrail ErrorType = "missing_trail"
	// ErrorTypeDuplicateFlag is the same option bound twice in one parse.
	ErrorTypeDuplicateFlag ErrorType = "duplicate_flag"
	// ErrorTypeUnexpectedArgument is a bare value with no positional slot
	// or trail left to absorb it.
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
)

// ParseError is a user-input error found while parsing a token slice. All
// parse errors are fatal to the parse attempt; nothing is retried.
type ParseError struct {
	Type       ErrorType
	Message    string
	Flag       string // offending flag as typed ("-x", "--name"), if any
	Group      string // offending grouped token ("-abc"), if any
	Label      string // positional or trail label, if any
	Suggestion string // "did you mean" candidate for unknown flags, if any
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '--%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

func unknownFlagError(spelling Spelling, candidates []string) *ParseError {
	return &ParseError{
		Type:       ErrorTypeUnknownFlag,
		Message:    fmt.Sprintf("unknown flag: %s", spelling),
		Flag:       spelling.String(),
		Suggestion: fuzzy.FindBestFlag(spelling.Long(), candidates, 2),
	}
}

func groupedNonSwitchError(group Token, bad Spelling) *ParseError {
	return &ParseError{
		Type:    ErrorTypeGroupedNonSwitch,
		Message: fmt.Sprintf("flag %s in group %s is not a switch and cannot be grouped", bad, group),
		Flag:    bad.String(),
		Group:   group.String(),
	}
}

func missingParameterError(spelling Spelling) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingParameter,
		Message: fmt.Sprintf("missing parameter for %s", spelling),
		Flag:    spelling.String(),
	}
}

func missingPositionalError(label string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingPositional,
		Message: fmt.Sprintf("missing positional argument '%s'", label),
		Label:   label,
	}
}

func missingTrailError(label string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingTrail,
		Message: fmt.Sprintf("expected one or more trailing '%s' values", label),
		Label:   label,
	}
}

func duplicateFlagError(name OptName) *ParseError {
	return &ParseError{
		Type:    ErrorTypeDuplicateFlag,
		Message: fmt.Sprintf("argument '%s' was given more than once", name),
		Flag:    "--" + name.Long(),
	}
}

func unexpectedArgumentError(value string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeUnexpectedArgument,
		Message: fmt.Sprintf("unexpected argument '%s'", value),
	}
}

// DeclarationErrorType categorizes registration-time errors. These surface
// when a declaration is added to a parser, never during a parse.
type DeclarationErrorType string

const (
	// DeclarationErrorDuplicateSpelling means a short or long spelling is
	// already claimed by an earlier declaration.
	DeclarationErrorDuplicateSpelling DeclarationErrorType = "duplicate_spelling"
	// DeclarationErrorDuplicatePositional means a positional with the same
	// label was already added.
	DeclarationErrorDuplicatePositional DeclarationErrorType = "duplicate_positional"
	// DeclarationErrorTrailRedeclared means a trail was already set.
	DeclarationErrorTrailRedeclared DeclarationErrorType = "trail_redeclared"
	// DeclarationErrorPositionalAfterTrail means a positional was added
	// after a trail declaration; the trail is always logically last.
	DeclarationErrorPositionalAfterTrail DeclarationErrorType = "positional_after_trail"
	// DeclarationErrorEmptyLongName means a non-pass-along optional was
	// declared with an empty long name. The empty long spelling is the
	// bare "--" token and is reserved for pass-alongs.
	DeclarationErrorEmptyLongName DeclarationErrorType = "empty_long_name"
)

// DeclarationError is a configuration error reported by Parser.Add. The
// registry is unchanged when one is returned.
type DeclarationError struct {
	Type    DeclarationErrorType
	Message string
}

func (e *DeclarationError) Error() string { return e.Message }

func declarationError(typ DeclarationErrorType, format string, args ...any) *DeclarationError {
	return &DeclarationError{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// NotDeclaredError reports a lookup of a name that was never registered
// with the parser that produced the result. It indicates a bug in the
// calling program rather than bad user input, so it is a distinct type
// from ParseError.
type NotDeclaredError struct {
	Query string // the name or index the caller asked for
	Want  string // what was looked up ("switch", "positional", ...)
}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("no %s declared as '%s'", e.Want, e.Query)
}

func notDeclaredError(want, query string) *NotDeclaredError {
	return &NotDeclaredError{Query: query, Want: want}
}
