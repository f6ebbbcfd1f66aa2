package argv

import (
	"slices"

	"github.com/dzonerzy/go-argv/internal/pool"
)

// arity is the declared value count of a value-taking option.
type arity int

const (
	aritySingle arity = iota
	arityZeroPlus
	arityOnePlus
)

type trailSpec struct {
	label    string
	required bool
}

// Parser accumulates argument declarations and parses raw token slices
// against them. It is mutable while declarations are added and must be
// treated as read-only once parsing begins; a fully built parser is safe
// for concurrent parses.
type Parser struct {
	positional []string
	trail      *trailSpec
	options    map[OptName]arity
	switches   map[OptName]struct{}
	interrupts map[OptName]struct{}
	passAlongs map[OptName]struct{}
	used       map[Spelling]struct{}
	aliases    map[Spelling]OptName
	decls      []Arg
}

// NewParser creates an empty parser.
func NewParser() *Parser {
	return &Parser{
		options:    make(map[OptName]arity),
		switches:   make(map[OptName]struct{}),
		interrupts: make(map[OptName]struct{}),
		passAlongs: make(map[OptName]struct{}),
		used:       make(map[Spelling]struct{}),
		aliases:    make(map[Spelling]OptName),
	}
}

// Add registers a declaration with the parser. It returns a
// *DeclarationError when the declaration would violate a registry
// invariant: a reused flag spelling, a reused positional label, a second
// trail, or a positional added after the trail. On failure the parser is
// unchanged.
func (p *Parser) Add(arg Arg) error {
	if name, ok := arg.OptName(); ok {
		if err := p.addOptional(arg, name); err != nil {
			return err
		}
		p.decls = append(p.decls, arg)
		return nil
	}

	switch arg.Kind() {
	case KindPositional:
		if slices.Contains(p.positional, arg.Name()) {
			return declarationError(DeclarationErrorDuplicatePositional,
				"a positional argument named '%s' has already been added", arg.Name())
		}
		if p.trail != nil {
			return declarationError(DeclarationErrorPositionalAfterTrail,
				"cannot add positional argument '%s' after the trail", arg.Name())
		}
		p.positional = append(p.positional, arg.Name())
	case KindTrailZeroPlus, KindTrailOnePlus:
		if p.trail != nil {
			return declarationError(DeclarationErrorTrailRedeclared,
				"a trailing argument has already been set")
		}
		p.trail = &trailSpec{label: arg.Name(), required: arg.Kind() == KindTrailOnePlus}
	}
	p.decls = append(p.decls, arg)
	return nil
}

// addOptional claims the spellings of an optional declaration and inserts
// its name into the collection for its kind. All checks run before any
// mutation.
func (p *Parser) addOptional(arg Arg, name OptName) error {
	if name.Long() == "" && arg.Kind() != KindPassAlong && !name.HasShort() {
		return declarationError(DeclarationErrorEmptyLongName,
			"the empty long name is reserved for pass-along arguments")
	}

	spellings := p.claimableSpellings(arg, name)
	for _, sp := range spellings {
		if _, taken := p.used[sp]; taken {
			return declarationError(DeclarationErrorDuplicateSpelling,
				"the flag '%s' is already defined", sp)
		}
	}
	for _, sp := range spellings {
		p.used[sp] = struct{}{}
		p.aliases[sp] = name
	}

	switch arg.Kind() {
	case KindOptSingle:
		p.options[name] = aritySingle
	case KindOptZeroPlus:
		p.options[name] = arityZeroPlus
	case KindOptOnePlus:
		p.options[name] = arityOnePlus
	case KindSwitch:
		p.switches[name] = struct{}{}
	case KindInterrupt:
		p.interrupts[name] = struct{}{}
	case KindPassAlong:
		p.passAlongs[name] = struct{}{}
	}
	return nil
}

// claimableSpellings lists the spellings a declaration claims. The empty
// long spelling (the bare "--" token) is only claimed by a pass-along, so
// a short-only option never owns "--" by accident.
func (p *Parser) claimableSpellings(arg Arg, name OptName) []Spelling {
	var spellings []Spelling
	if name.Long() != "" || arg.Kind() == KindPassAlong {
		spellings = append(spellings, LongSpelling(name.Long()))
	}
	if name.HasShort() {
		spellings = append(spellings, ShortSpelling(name.Short()))
	}
	return spellings
}

// AddMany registers declarations in order, stopping at the first failure.
// Declarations added before the failure remain registered; AddMany is
// deliberately best-effort, not atomic.
func (p *Parser) AddMany(args ...Arg) error {
	for _, arg := range args {
		if err := p.Add(arg); err != nil {
			return err
		}
	}
	return nil
}

// Declarations returns the registered declarations in the order they were
// added. The slice is a copy; help renderers can consume it freely.
func (p *Parser) Declarations() []Arg {
	return slices.Clone(p.decls)
}

// resolve maps a long name to its canonical option name, if declared.
func (p *Parser) resolve(long string) (OptName, bool) {
	name, ok := p.aliases[LongSpelling(long)]
	return name, ok
}

// longNames lists the declared long names, used for suggestions on
// unknown-flag errors.
func (p *Parser) longNames() []string {
	names := make([]string, 0, len(p.aliases))
	for sp := range p.aliases {
		if sp.Kind() == SpellingLong && sp.Long() != "" {
			names = append(names, sp.Long())
		}
	}
	return names
}

// tokenBuffer is the engine's per-parse scratch state, recycled through a
// pool so repeated parses do not reallocate the classification slice.
type tokenBuffer struct {
	tokens []Token
}

var tokenBuffers = pool.New(func() *tokenBuffer {
	return &tokenBuffer{tokens: make([]Token, 0, 32)}
})

// Stream parses args left to right and pushes one Item per recognized
// argument to yield. The sequence is single-pass and not restartable:
// consuming it again requires calling Stream again. Stopping early by
// returning false from yield is always safe and leaves no dangling state.
//
// args must not include the program-name token. Stream returns a
// *ParseError on the first invalid token and nil otherwise. An interrupt
// flag anywhere in args short-circuits everything: the stream is then a
// single ItemInterrupt, even when earlier tokens are invalid.
//
// Item values alias args; they stay valid as long as args does.
func (p *Parser) Stream(args []string, yield func(Item) bool) error {
	buf := tokenBuffers.Get()
	defer func() {
		buf.tokens = buf.tokens[:0]
		tokenBuffers.Put(buf)
	}()

	buf.tokens = buf.tokens[:0]
	for _, raw := range args {
		buf.tokens = append(buf.tokens, Classify(raw))
	}
	return p.scan(args, buf.tokens, yield)
}

// scan is the parsing state machine described in the package
// documentation: an interrupt pre-scan, a cursor scan consuming
// positionals and options, and an end-of-input check for positional
// completeness and the trail.
func (p *Parser) scan(args []string, tokens []Token, yield func(Item) bool) error {
	// Interrupts win over every other outcome, including unknown flags
	// that appear before them, so --help works on a malformed line.
	for _, tok := range tokens {
		if tok.Kind != TokenFlag {
			continue
		}
		if name, ok := p.aliases[tok.Flag]; ok {
			if _, isInterrupt := p.interrupts[name]; isInterrupt {
				yield(Item{Kind: ItemInterrupt, Name: name})
				return nil
			}
		}
	}

	filled := 0
	var trailValues []string
	var bound map[OptName]struct{}

	i := 0
scan:
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokenValue:
			switch {
			case filled < len(p.positional):
				item := Item{Kind: ItemPositional, Label: p.positional[filled], Value: tok.Value}
				filled++
				if !yield(item) {
					return nil
				}
			case p.trail != nil:
				trailValues = append(trailValues, tok.Value)
			default:
				return unexpectedArgumentError(tok.Value)
			}
			i++

		case TokenFlag:
			name, known := p.aliases[tok.Flag]
			if !known {
				return unknownFlagError(tok.Flag, p.longNames())
			}
			if _, isSwitch := p.switches[name]; isSwitch {
				if !yield(Item{Kind: ItemSwitch, Name: name}) {
					return nil
				}
				i++
				continue
			}
			if _, isPass := p.passAlongs[name]; isPass {
				if !yield(Item{Kind: ItemPassAlong, Name: name, Values: args[i+1:]}) {
					return nil
				}
				break scan
			}

			// Value-taking option: consume the following run of values
			// according to its arity. The run stops at the first token
			// that classifies as a flag, even an undeclared one.
			ar := p.options[name]
			if _, dup := bound[name]; dup {
				return duplicateFlagError(name)
			}
			if bound == nil {
				bound = make(map[OptName]struct{})
			}
			bound[name] = struct{}{}

			switch ar {
			case aritySingle:
				if i+1 >= len(tokens) || tokens[i+1].Kind != TokenValue {
					return missingParameterError(tok.Flag)
				}
				if !yield(Item{Kind: ItemOptionValue, Name: name, Value: tokens[i+1].Value}) {
					return nil
				}
				i += 2
			case arityZeroPlus, arityOnePlus:
				end := i + 1
				for end < len(tokens) && tokens[end].Kind == TokenValue {
					end++
				}
				if ar == arityOnePlus && end == i+1 {
					return missingParameterError(tok.Flag)
				}
				if !yield(Item{Kind: ItemOptionValues, Name: name, Values: args[i+1 : end]}) {
					return nil
				}
				i = end
			}

		case TokenShortGroup:
			// Grouping is only valid for switches; validate the whole
			// group before emitting any hit.
			for _, sp := range tok.Group {
				name, known := p.aliases[sp]
				if !known {
					return groupedNonSwitchError(tok, sp)
				}
				if _, isSwitch := p.switches[name]; !isSwitch {
					return groupedNonSwitchError(tok, sp)
				}
			}
			for _, sp := range tok.Group {
				if !yield(Item{Kind: ItemSwitch, Name: p.aliases[sp]}) {
					return nil
				}
			}
			i++
		}
	}

	if filled < len(p.positional) {
		return missingPositionalError(p.positional[filled])
	}
	if p.trail != nil {
		if p.trail.required && len(trailValues) == 0 {
			return missingTrailError(p.trail.label)
		}
		// The trail is always the last item: its membership is only known
		// once no more positionals can claim values.
		yield(Item{Kind: ItemTrail, Label: p.trail.label, Values: trailValues})
	}
	return nil
}

// ParseResult is the outcome of a successful parse attempt: either a full
// set of bound arguments, or an interrupt that short-circuited the parse.
type ParseResult struct {
	// Args holds the bound arguments; nil when Interrupted is true.
	Args *ParsedArgs
	// Interrupt is the interrupt argument that was found; the zero
	// OptName unless Interrupted is true.
	Interrupt OptName
	// Interrupted reports whether an interrupt flag short-circuited the
	// parse. An interrupt is not an error: the caller typically reacts by
	// printing help or a version string.
	Interrupted bool
}

// Parse parses args against the declarations and returns the aggregate
// result. args must not include the program-name token. A *ParseError is
// returned for invalid input; an interrupt is reported through the result,
// not as an error. Parsing the same args against the same parser twice
// yields identical results.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	res := &ParseResult{}
	parsed := newParsedArgs(p)

	err := p.Stream(args, func(item Item) bool {
		switch item.Kind {
		case ItemInterrupt:
			res.Interrupted = true
			res.Interrupt = item.Name
			return false
		case ItemPositional:
			parsed.positional[item.Label] = item.Value
			parsed.ordered = append(parsed.ordered, item.Value)
		case ItemTrail:
			parsed.trail = item.Values
		case ItemOptionValue:
			parsed.singles[item.Name] = item.Value
		case ItemOptionValues:
			parsed.multiples[item.Name] = item.Values
		case ItemSwitch:
			parsed.switches[item.Name] = true
		case ItemPassAlong:
			parsed.passed[item.Name] = item.Values
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if res.Interrupted {
		return res, nil
	}
	res.Args = parsed
	return res, nil
}
