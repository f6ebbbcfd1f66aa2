package argv

import "fmt"

// SpellingKind distinguishes the two ways a flag can be written on a
// command line.
type SpellingKind int

const (
	// SpellingShort is a single-dash, single-rune spelling (-v).
	SpellingShort SpellingKind = iota
	// SpellingLong is a double-dash word spelling (--verbose).
	SpellingLong
)

// Spelling is one concrete way a flag can be written. It is a comparable
// value type and is used directly as a lookup key, so two spellings are
// the same flag iff they compare equal.
type Spelling struct {
	kind  SpellingKind
	short rune
	long  string
}

// ShortSpelling returns the spelling for a single-dash short flag (-v).
func ShortSpelling(short rune) Spelling {
	return Spelling{kind: SpellingShort, short: short}
}

// LongSpelling returns the spelling for a double-dash long flag (--verbose).
// The name may be empty; the empty long spelling denotes the bare "--"
// token and can only ever resolve to a pass-along argument.
func LongSpelling(long string) Spelling {
	return Spelling{kind: SpellingLong, long: long}
}

// Kind returns whether the spelling is short or long.
func (s Spelling) Kind() SpellingKind { return s.kind }

// Short returns the rune of a short spelling, or 0 for a long spelling.
func (s Spelling) Short() rune {
	if s.kind != SpellingShort {
		return 0
	}
	return s.short
}

// Long returns the word of a long spelling, or "" for a short spelling.
func (s Spelling) Long() string {
	if s.kind != SpellingLong {
		return ""
	}
	return s.long
}

// String renders the spelling the way a user would type it.
func (s Spelling) String() string {
	if s.kind == SpellingShort {
		return fmt.Sprintf("-%c", s.short)
	}
	return "--" + s.long
}

// OptName is the canonical identity of an optional argument, independent of
// which spelling the user typed. It always carries a long name; the short
// rune is 0 when no short alias was declared. OptName is comparable and is
// used as a map key throughout the parser.
type OptName struct {
	long  string
	short rune
}

// LongName returns the canonical name of an optional argument that only has
// a long spelling.
func LongName(long string) OptName {
	return OptName{long: long}
}

// ShortAndLongName returns the canonical name of an optional argument that
// has both a short and a long spelling.
func ShortAndLongName(short rune, long string) OptName {
	return OptName{long: long, short: short}
}

// Long returns the long name without the leading dashes.
func (n OptName) Long() string { return n.long }

// Short returns the short rune, or 0 if no short alias exists.
func (n OptName) Short() rune { return n.short }

// HasShort reports whether a short alias was declared.
func (n OptName) HasShort() bool { return n.short != 0 }

// Spellings returns every spelling that denotes this option, short first.
func (n OptName) Spellings() []Spelling {
	if n.short != 0 {
		return []Spelling{ShortSpelling(n.short), LongSpelling(n.long)}
	}
	return []Spelling{LongSpelling(n.long)}
}

// String renders the name for error and help messages ("-v | --verbose").
func (n OptName) String() string {
	if n.short != 0 {
		return fmt.Sprintf("-%c | --%s", n.short, n.long)
	}
	return "--" + n.long
}

// TokenKind classifies a raw command-line token.
type TokenKind int

const (
	// TokenValue is a bare value with no flag syntax.
	TokenValue TokenKind = iota
	// TokenFlag is a single short or long flag.
	TokenFlag
	// TokenShortGroup is a dash followed by two or more runes, meaning a
	// group of short switches (-abc).
	TokenShortGroup
)

// Token is the classification of one raw command-line token.
type Token struct {
	Kind  TokenKind
	Value string     // raw text, set for TokenValue
	Flag  Spelling   // set for TokenFlag
	Group []Spelling // set for TokenShortGroup, in left-to-right order
}

// Classify determines the lexical class of a raw token. The rules are
// checked in order:
//
//   - "--rest" (two leading dashes) is a long flag; the remainder may be
//     empty, so the bare "--" token is the long flag with the empty name.
//   - "-x" (one dash, exactly one further rune) is a short flag.
//   - "-xyz" (one dash, two or more further runes) is a group of short
//     flags, one per rune.
//   - anything else, including the bare "-", is a value.
//
// Classify is a pure function of the token text.
func Classify(raw string) Token {
	if len(raw) >= 2 && raw[0] == '-' && raw[1] == '-' {
		return Token{Kind: TokenFlag, Flag: LongSpelling(raw[2:])}
	}
	if len(raw) >= 2 && raw[0] == '-' {
		runes := []rune(raw[1:])
		if len(runes) == 1 {
			return Token{Kind: TokenFlag, Flag: ShortSpelling(runes[0])}
		}
		group := make([]Spelling, len(runes))
		for i, r := range runes {
			group[i] = ShortSpelling(r)
		}
		return Token{Kind: TokenShortGroup, Group: group}
	}
	return Token{Kind: TokenValue, Value: raw}
}

// String renders the token the way the user typed it.
func (t Token) String() string {
	switch t.Kind {
	case TokenFlag:
		return t.Flag.String()
	case TokenShortGroup:
		runes := make([]rune, 0, len(t.Group)+1)
		runes = append(runes, '-')
		for _, s := range t.Group {
			runes = append(runes, s.Short())
		}
		return string(runes)
	default:
		return t.Value
	}
}
