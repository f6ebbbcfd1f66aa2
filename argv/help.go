package argv

import (
	"fmt"
	"strings"
)

// Help rendering is a consumer of the declared argument list: it never
// affects parsing semantics and the library never prints it. Callers
// decide when and where the text goes.

// Usage renders a one-line usage string for the program.
func Usage(program string, p *Parser) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(program)

	hasOptions := false
	for _, arg := range p.Declarations() {
		switch arg.Kind() {
		case KindOptSingle, KindOptZeroPlus, KindOptOnePlus, KindSwitch, KindInterrupt:
			hasOptions = true
		}
	}
	if hasOptions {
		b.WriteString(" [options]")
	}
	for _, arg := range p.Declarations() {
		switch arg.Kind() {
		case KindPositional:
			fmt.Fprintf(&b, " %s", arg.Name())
		case KindTrailZeroPlus:
			fmt.Fprintf(&b, " [%s, ..]", arg.Name())
		case KindTrailOnePlus:
			fmt.Fprintf(&b, " %s [%s, ..]", arg.Name(), arg.Name())
		case KindPassAlong:
			if arg.Name() == "" {
				b.WriteString(" [-- ..]")
			} else {
				fmt.Fprintf(&b, " [--%s ..]", arg.Name())
			}
		}
	}
	return b.String()
}

// Help renders a help message from the parser's declarations, grouped into
// sections in declaration order: required arguments, interrupts, optional
// arguments, and pass-alongs. The columns of each section are aligned.
func Help(p *Parser) string {
	var required, interrupting, optional, passing [][2]string

	for _, arg := range p.Declarations() {
		entry := [2]string{leftColumn(arg), arg.Help()}
		switch arg.Kind() {
		case KindPositional, KindTrailZeroPlus, KindTrailOnePlus:
			required = append(required, entry)
		case KindInterrupt:
			interrupting = append(interrupting, entry)
		case KindOptSingle, KindOptZeroPlus, KindOptOnePlus, KindSwitch:
			optional = append(optional, entry)
		case KindPassAlong:
			passing = append(passing, entry)
		}
	}

	var b strings.Builder
	writeSection(&b, "Required arguments:", required)
	writeSection(&b, "Interrupts:", interrupting)
	writeSection(&b, "Optional arguments:", optional)
	writeSection(&b, "Pass-alongs:", passing)
	return strings.TrimRight(b.String(), "\n")
}

// leftColumn renders the invocation column for one declaration.
func leftColumn(arg Arg) string {
	switch arg.Kind() {
	case KindPositional:
		return arg.Name()
	case KindTrailZeroPlus:
		return fmt.Sprintf("[%s, ..]", arg.Name())
	case KindTrailOnePlus:
		return fmt.Sprintf("%s [%s, ..]", arg.Name(), arg.Name())
	}

	name, _ := arg.OptName()
	flags := flagColumn(name, arg.Kind())
	param := arg.Param()
	if param == "" {
		param = strings.ToUpper(arg.Name())
	}

	switch arg.Kind() {
	case KindOptSingle:
		return fmt.Sprintf("%s %s", flags, param)
	case KindOptZeroPlus:
		return fmt.Sprintf("%s [%s, ..]", flags, param)
	case KindOptOnePlus:
		return fmt.Sprintf("%s %s [%s, ..]", flags, param, param)
	case KindPassAlong:
		return fmt.Sprintf("%s ..", flags)
	default: // switches and interrupts take no parameter
		return flags
	}
}

// flagColumn renders the spellings of an optional argument. A pass-along
// with the empty long name is rendered as the bare "--" token it matches.
func flagColumn(name OptName, kind ArgKind) string {
	if kind == KindPassAlong && name.Long() == "" && !name.HasShort() {
		return "--"
	}
	if name.HasShort() {
		return fmt.Sprintf("-%c | --%s", name.Short(), name.Long())
	}
	return "--" + name.Long()
}

// writeSection appends one aligned two-column section.
func writeSection(b *strings.Builder, title string, entries [][2]string) {
	if len(entries) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title)
	b.WriteString("\n")

	width := 0
	for _, entry := range entries {
		if len(entry[0]) > width {
			width = len(entry[0])
		}
	}
	for _, entry := range entries {
		if entry[1] == "" {
			fmt.Fprintf(b, "  %s\n", entry[0])
			continue
		}
		fmt.Fprintf(b, "  %-*s   %s\n", width, entry[0], entry[1])
	}
}
