package argv

import "strconv"

// ParsedArgs is the aggregate view over one finished parse. It borrows
// from the parser that produced it and from the input token slice, so both
// must outlive it. All lookups go by the names used at declaration time;
// querying a name that was never declared is a caller bug and is reported
// with a *NotDeclaredError rather than silently defaulted.
type ParsedArgs struct {
	parser     *Parser
	positional map[string]string
	ordered    []string
	trail      []string
	singles    map[OptName]string
	multiples  map[OptName][]string
	switches   map[OptName]bool
	passed     map[OptName][]string
}

func newParsedArgs(p *Parser) *ParsedArgs {
	parsed := &ParsedArgs{
		parser:     p,
		positional: make(map[string]string, len(p.positional)),
		ordered:    make([]string, 0, len(p.positional)),
		singles:    make(map[OptName]string),
		multiples:  make(map[OptName][]string),
		switches:   make(map[OptName]bool, len(p.switches)),
		passed:     make(map[OptName][]string),
	}
	// Every declared switch is present with a definite value: false until
	// a hit sets it.
	for name := range p.switches {
		parsed.switches[name] = false
	}
	return parsed
}

// Positional returns the value bound to the positional argument with the
// given label.
func (a *ParsedArgs) Positional(label string) (string, error) {
	value, ok := a.positional[label]
	if !ok {
		return "", notDeclaredError("positional argument", label)
	}
	return value, nil
}

// PositionalAt returns the value bound to the positional argument at the
// given declaration index, starting at 0.
func (a *ParsedArgs) PositionalAt(index int) (string, error) {
	if index < 0 || index >= len(a.ordered) {
		return "", notDeclaredError("positional argument", "#"+strconv.Itoa(index))
	}
	return a.ordered[index], nil
}

// Trail returns the collected trail values. The slice is empty, not nil
// being meaningful, when a zero-or-more trail received no values. Trail
// fails when no trail was declared.
func (a *ParsedArgs) Trail() ([]string, error) {
	if a.parser.trail == nil {
		return nil, notDeclaredError("trail", "trail")
	}
	return a.trail, nil
}

// Switch reports whether the switch with the given long name was present.
func (a *ParsedArgs) Switch(long string) (bool, error) {
	name, ok := a.parser.resolve(long)
	if !ok {
		return false, notDeclaredError("switch", long)
	}
	set, declared := a.switches[name]
	if !declared {
		return false, notDeclaredError("switch", long)
	}
	return set, nil
}

// Single returns the value of a single-parameter option and whether it was
// given. It fails when no single-parameter option with that long name was
// declared.
func (a *ParsedArgs) Single(long string) (string, bool, error) {
	name, ok := a.parser.resolve(long)
	if !ok {
		return "", false, notDeclaredError("single-parameter argument", long)
	}
	ar, declared := a.parser.options[name]
	if !declared || ar != aritySingle {
		return "", false, notDeclaredError("single-parameter argument", long)
	}
	value, given := a.singles[name]
	return value, given, nil
}

// Multiple returns the value run of a multi-parameter option and whether
// it was given. It fails when no zero-or-more or one-or-more option with
// that long name was declared.
func (a *ParsedArgs) Multiple(long string) ([]string, bool, error) {
	name, ok := a.parser.resolve(long)
	if !ok {
		return nil, false, notDeclaredError("multi-parameter argument", long)
	}
	ar, declared := a.parser.options[name]
	if !declared || ar == aritySingle {
		return nil, false, notDeclaredError("multi-parameter argument", long)
	}
	values, given := a.multiples[name]
	return values, given, nil
}

// PassAlong returns the tokens captured verbatim after the pass-along flag
// with the given long name, and whether the flag was present. It fails
// when no pass-along with that long name was declared.
func (a *ParsedArgs) PassAlong(long string) ([]string, bool, error) {
	name, ok := a.parser.resolve(long)
	if !ok {
		return nil, false, notDeclaredError("pass-along argument", long)
	}
	if _, declared := a.parser.passAlongs[name]; !declared {
		return nil, false, notDeclaredError("pass-along argument", long)
	}
	rest, given := a.passed[name]
	return rest, given, nil
}
