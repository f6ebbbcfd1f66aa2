package argv

// ArgKind identifies how an argument declaration binds input tokens.
type ArgKind int

const (
	// KindPositional is exactly one required value at a fixed position.
	KindPositional ArgKind = iota
	// KindTrailZeroPlus consumes the remaining positional-looking tokens
	// after the fixed positions are filled; the trail may be empty.
	KindTrailZeroPlus
	// KindTrailOnePlus is a trail that must receive at least one value.
	KindTrailOnePlus
	// KindOptSingle is an optional flag that takes exactly one value.
	KindOptSingle
	// KindOptZeroPlus is an optional flag that takes a run of zero or more
	// following values.
	KindOptZeroPlus
	// KindOptOnePlus is an optional flag that takes a run of one or more
	// following values.
	KindOptOnePlus
	// KindSwitch is a boolean presence flag.
	KindSwitch
	// KindInterrupt is a presence flag that aborts normal parsing.
	KindInterrupt
	// KindPassAlong captures every token after its position, unparsed.
	KindPassAlong
)

// String returns a readable name for the kind (used in errors and help).
func (k ArgKind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindTrailZeroPlus:
		return "optional trail"
	case KindTrailOnePlus:
		return "required trail"
	case KindOptSingle:
		return "single-parameter option"
	case KindOptZeroPlus:
		return "zero-or-more option"
	case KindOptOnePlus:
		return "one-or-more option"
	case KindSwitch:
		return "switch"
	case KindInterrupt:
		return "interrupt"
	case KindPassAlong:
		return "pass-along"
	default:
		return "unknown"
	}
}

// Arg is one immutable argument declaration. Declarations carry no
// reference to any parser; the same value can be registered with a parser,
// rendered into help text, or both.
type Arg struct {
	kind  ArgKind
	label string  // positional and trail label
	name  OptName // optional-argument name
	param string  // display label for the option's parameter(s)
	help  string
}

// Positional declares a single required value bound by position. The label
// names the slot for lookups and help text.
func Positional(label string) Arg {
	return Arg{kind: KindPositional, label: label}
}

// OptionalTrail declares a zero-or-more trail collecting the remaining
// positional-looking values.
func OptionalTrail(label string) Arg {
	return Arg{kind: KindTrailZeroPlus, label: label}
}

// RequiredTrail declares a one-or-more trail; parsing fails when no
// trailing value is supplied.
func RequiredTrail(label string) Arg {
	return Arg{kind: KindTrailOnePlus, label: label}
}

// OptArg is the partial builder for an optional argument: it has a name
// but not yet an arity. Call one of its finishers to obtain the Arg.
type OptArg struct {
	name OptName
}

// Named starts an optional argument with only a long spelling
// (ex "help" for --help).
func Named(long string) OptArg {
	return OptArg{name: LongName(long)}
}

// NamedAndShort starts an optional argument with both a long and a short
// spelling (ex "help" and 'h' for --help and -h).
func NamedAndShort(long string, short rune) OptArg {
	return OptArg{name: ShortAndLongName(short, long)}
}

// Single finishes the argument as an option taking exactly one value.
func (o OptArg) Single() Arg {
	return Arg{kind: KindOptSingle, name: o.name}
}

// ZeroOrMore finishes the argument as an option taking a run of zero or
// more following values.
func (o OptArg) ZeroOrMore() Arg {
	return Arg{kind: KindOptZeroPlus, name: o.name}
}

// OneOrMore finishes the argument as an option taking a run of one or more
// following values.
func (o OptArg) OneOrMore() Arg {
	return Arg{kind: KindOptOnePlus, name: o.name}
}

// Switch finishes the argument as a boolean presence flag.
func (o OptArg) Switch() Arg {
	return Arg{kind: KindSwitch, name: o.name}
}

// Interrupt finishes the argument as an interrupt: when its flag is found
// anywhere in the input, parsing stops and reports the interrupt instead
// of a result. Typical uses are --help and --version.
func (o OptArg) Interrupt() Arg {
	return Arg{kind: KindInterrupt, name: o.name}
}

// PassAlong finishes the argument as a pass-along: once its flag is found,
// every remaining token is captured verbatim and parsing of them is
// skipped. A pass-along is the only kind that may be declared with the
// empty long name, which binds it to the bare "--" token.
func (o OptArg) PassAlong() Arg {
	return Arg{kind: KindPassAlong, name: o.name}
}

// WithParam returns a copy of the declaration with a display label for the
// option's parameter(s), used by help rendering.
func (a Arg) WithParam(label string) Arg {
	a.param = label
	return a
}

// WithHelp returns a copy of the declaration with a help text.
func (a Arg) WithHelp(text string) Arg {
	a.help = text
	return a
}

// Kind returns the declaration's kind.
func (a Arg) Kind() ArgKind { return a.kind }

// Name returns the long name of the argument: the positional or trail
// label, or the option's long name without dashes.
func (a Arg) Name() string {
	if a.kind == KindPositional || a.kind == KindTrailZeroPlus || a.kind == KindTrailOnePlus {
		return a.label
	}
	return a.name.Long()
}

// OptName returns the canonical option name and true for optional
// declarations, and the zero OptName and false for positionals and trails.
func (a Arg) OptName() (OptName, bool) {
	switch a.kind {
	case KindPositional, KindTrailZeroPlus, KindTrailOnePlus:
		return OptName{}, false
	default:
		return a.name, true
	}
}

// Param returns the declared parameter label, or "" if none was set.
func (a Arg) Param() string { return a.param }

// Help returns the declared help text, or "" if none was set.
func (a Arg) Help() string { return a.help }
