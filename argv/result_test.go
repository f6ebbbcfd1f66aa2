package argv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, p *Parser, args []string) *ParsedArgs {
	t.Helper()
	res, err := p.Parse(args)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Interrupted {
		t.Fatalf("unexpected interrupt: %v", res.Interrupt)
	}
	return res.Args
}

func TestParseAggregate(t *testing.T) {
	p := declare(t,
		Positional("source"),
		Positional("dest"),
		OptionalTrail("extras"),
		NamedAndShort("verbose", 'v').Switch(),
		Named("dry-run").Switch(),
		NamedAndShort("output", 'o').Single(),
		NamedAndShort("exclude", 'x').ZeroOrMore(),
	)

	args := parse(t, p, []string{
		"in.txt", "out.txt", "-v", "-x", "tmp", "log", "--output", "res.txt", "more",
	})

	if got, err := args.Positional("source"); err != nil || got != "in.txt" {
		t.Errorf("Positional(source) = %q, %v", got, err)
	}
	if got, err := args.PositionalAt(1); err != nil || got != "out.txt" {
		t.Errorf("PositionalAt(1) = %q, %v", got, err)
	}

	trail, err := args.Trail()
	if err != nil {
		t.Fatalf("Trail failed: %v", err)
	}
	if diff := cmp.Diff([]string{"more"}, trail); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}

	if on, err := args.Switch("verbose"); err != nil || !on {
		t.Errorf("Switch(verbose) = %v, %v, want true", on, err)
	}
	if on, err := args.Switch("dry-run"); err != nil || on {
		t.Errorf("Switch(dry-run) = %v, %v, want false for an absent switch", on, err)
	}

	value, given, err := args.Single("output")
	if err != nil || !given || value != "res.txt" {
		t.Errorf("Single(output) = %q, %v, %v", value, given, err)
	}

	values, given, err := args.Multiple("exclude")
	if err != nil || !given {
		t.Fatalf("Multiple(exclude) = %v, %v", given, err)
	}
	if diff := cmp.Diff([]string{"tmp", "log"}, values); diff != "" {
		t.Errorf("exclude values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAbsentOption(t *testing.T) {
	p := declare(t,
		Named("output").Single(),
		Named("exclude").ZeroOrMore(),
	)
	args := parse(t, p, nil)

	if _, given, err := args.Single("output"); err != nil || given {
		t.Errorf("absent single should report given=false, got %v, %v", given, err)
	}
	if _, given, err := args.Multiple("exclude"); err != nil || given {
		t.Errorf("absent multiple should report given=false, got %v, %v", given, err)
	}
}

func TestParseInterrupt(t *testing.T) {
	p := declare(t,
		Positional("required"),
		NamedAndShort("help", 'h').Interrupt(),
	)

	// The missing positional would be an error, but the interrupt wins.
	res, err := p.Parse([]string{"-h"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !res.Interrupted {
		t.Fatal("expected an interrupted result")
	}
	if res.Interrupt != ShortAndLongName('h', "help") {
		t.Errorf("Interrupt = %v, want -h | --help", res.Interrupt)
	}
	if res.Args != nil {
		t.Error("an interrupted result must not carry parsed arguments")
	}
}

func TestParsePassAlongAccess(t *testing.T) {
	p := declare(t,
		Named("run").PassAlong(),
	)
	args := parse(t, p, []string{"--run", "make", "-j", "4"})

	rest, given, err := args.PassAlong("run")
	if err != nil || !given {
		t.Fatalf("PassAlong(run) = %v, %v", given, err)
	}
	if diff := cmp.Diff([]string{"make", "-j", "4"}, rest); diff != "" {
		t.Errorf("pass-along capture mismatch (-want +got):\n%s", diff)
	}
}

// TestNotDeclaredErrors checks the caller-bug error class: queries for
// names never registered fail loudly instead of defaulting.
func TestNotDeclaredErrors(t *testing.T) {
	p := declare(t,
		Positional("src"),
		Named("verbose").Switch(),
		Named("output").Single(),
	)
	args := parse(t, p, []string{"a", "--output", "o"})

	var notDeclared *NotDeclaredError

	if _, err := args.Positional("missing"); !errors.As(err, &notDeclared) {
		t.Errorf("Positional(missing) error = %v, want *NotDeclaredError", err)
	}
	if _, err := args.PositionalAt(5); !errors.As(err, &notDeclared) {
		t.Errorf("PositionalAt(5) error = %v, want *NotDeclaredError", err)
	}
	if _, err := args.Trail(); !errors.As(err, &notDeclared) {
		t.Errorf("Trail() with no trail declared = %v, want *NotDeclaredError", err)
	}
	if _, err := args.Switch("nope"); !errors.As(err, &notDeclared) {
		t.Errorf("Switch(nope) error = %v, want *NotDeclaredError", err)
	}
	// Declared, but as the wrong kind.
	if _, err := args.Switch("output"); !errors.As(err, &notDeclared) {
		t.Errorf("Switch(output) error = %v, want *NotDeclaredError", err)
	}
	if _, _, err := args.Single("verbose"); !errors.As(err, &notDeclared) {
		t.Errorf("Single(verbose) error = %v, want *NotDeclaredError", err)
	}
	if _, _, err := args.Multiple("output"); !errors.As(err, &notDeclared) {
		t.Errorf("Multiple(output) error = %v, want *NotDeclaredError", err)
	}
	if _, _, err := args.PassAlong("verbose"); !errors.As(err, &notDeclared) {
		t.Errorf("PassAlong(verbose) error = %v, want *NotDeclaredError", err)
	}
}

// TestParseErrorClassDistinct checks that user-input errors and caller
// bugs are reported through different types.
func TestParseErrorClassDistinct(t *testing.T) {
	p := declare(t, Positional("src"))

	_, err := p.Parse([]string{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	var notDeclared *NotDeclaredError
	if errors.As(err, &notDeclared) {
		t.Error("a ParseError must not satisfy NotDeclaredError")
	}
}

func TestParseIdempotent(t *testing.T) {
	p := declare(t,
		Positional("cmd"),
		RequiredTrail("files"),
		NamedAndShort("jobs", 'j').Single(),
	)
	input := []string{"build", "-j", "8", "x", "y"}

	first := parse(t, p, input)
	second := parse(t, p, input)

	firstTrail, _ := first.Trail()
	secondTrail, _ := second.Trail()
	if diff := cmp.Diff(firstTrail, secondTrail); diff != "" {
		t.Errorf("repeated parses diverged (-first +second):\n%s", diff)
	}
	firstJobs, _, _ := first.Single("jobs")
	secondJobs, _, _ := second.Single("jobs")
	if firstJobs != secondJobs {
		t.Errorf("repeated parses diverged: %q vs %q", firstJobs, secondJobs)
	}
}
