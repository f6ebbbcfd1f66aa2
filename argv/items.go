package argv

import (
	"fmt"
	"strings"
)

// ItemKind identifies the kind of one streamed parse item.
type ItemKind int

const (
	// ItemPositional binds one value to a declared positional slot.
	ItemPositional ItemKind = iota
	// ItemTrail carries the collected trail values; it is always the last
	// item of a stream when a trail is declared, and is emitted even when
	// the trail is empty (for a zero-or-more trail).
	ItemTrail
	// ItemOptionValue is a single-parameter option with its value.
	ItemOptionValue
	// ItemOptionValues is a multi-parameter option with its value run.
	ItemOptionValues
	// ItemSwitch is one occurrence of a switch.
	ItemSwitch
	// ItemInterrupt reports an interrupt flag; it is the only item of its
	// stream and the parse stops after it.
	ItemInterrupt
	// ItemPassAlong carries every token after the pass-along flag,
	// verbatim and unparsed; no further flag or positional items follow
	// it, only the final trail item if a trail was declared.
	ItemPassAlong
)

// Item is one classified, arity-resolved occurrence produced by
// Parser.Stream. Which fields are set depends on Kind:
//
//	ItemPositional   Label, Value
//	ItemTrail        Label, Values
//	ItemOptionValue  Name, Value
//	ItemOptionValues Name, Values
//	ItemSwitch       Name
//	ItemInterrupt    Name
//	ItemPassAlong    Name, Values (the captured remainder)
//
// Values slices alias the scan's buffers and the input token slice; they
// are valid for the lifetime of the input.
type Item struct {
	Kind   ItemKind
	Label  string
	Name   OptName
	Value  string
	Values []string
}

// String renders the item for debugging and test failure messages.
func (it Item) String() string {
	switch it.Kind {
	case ItemPositional:
		return fmt.Sprintf("positional %s=%q", it.Label, it.Value)
	case ItemTrail:
		return fmt.Sprintf("trail %s=[%s]", it.Label, strings.Join(it.Values, ", "))
	case ItemOptionValue:
		return fmt.Sprintf("option --%s=%q", it.Name.Long(), it.Value)
	case ItemOptionValues:
		return fmt.Sprintf("option --%s=[%s]", it.Name.Long(), strings.Join(it.Values, ", "))
	case ItemSwitch:
		return fmt.Sprintf("switch --%s", it.Name.Long())
	case ItemInterrupt:
		return fmt.Sprintf("interrupt --%s", it.Name.Long())
	case ItemPassAlong:
		return fmt.Sprintf("pass-along --%s [%s]", it.Name.Long(), strings.Join(it.Values, ", "))
	default:
		return "unknown item"
	}
}
