// Package argv declares and parses command-line argument surfaces.
//
// A caller describes the arguments a program expects - positional values,
// a variable-length trail, optional flags with short and long spellings,
// switches, interrupts such as --help, and a pass-along that forwards the
// rest of the line verbatim - then hands the raw token slice to a parser:
//
//	p := argv.NewParser()
//	err := p.AddMany(
//		argv.Positional("source").WithHelp("file to read"),
//		argv.NamedAndShort("verbose", 'v').Switch(),
//		argv.NamedAndShort("exclude", 'x').ZeroOrMore().WithParam("PATTERN"),
//		argv.NamedAndShort("help", 'h').Interrupt(),
//	)
//	...
//	res, err := p.Parse(os.Args[1:])
//
// Parse returns an aggregate ParsedArgs to query by declared name, or a
// typed *ParseError, or an interrupt outcome. Stream is the lower-level
// single-pass variant that pushes one Item per recognized argument.
//
// Values are always opaque text: the package never converts or validates
// them, never reads the environment, and never prints or exits. Help text
// rendering (Usage, Help) consumes the declaration list only and is fully
// separate from parsing.
package argv
