package plan

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"The Fellowship of the Ring",
		"    The first part of",
		"    The Lord of the Rings.",
		"",
		"The Two Towers",
		"\tIndented with a tab.",
		"The Return of the King   ",
	}, "\n")

	p, err := Parse("tolkien", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if p.Name != "tolkien" {
		t.Errorf("Name = %q, want %q", p.Name, "tolkien")
	}
	if p.Cyclic {
		t.Error("parsed plan should be acyclic")
	}
	if got := p.CurrentEntryNumber(); got != 1 {
		t.Errorf("CurrentEntryNumber() = %d, want 1", got)
	}

	want := []Entry{
		NewEntryWithDescription("The Fellowship of the Ring", "The first part of The Lord of the Rings."),
		NewEntryWithDescription("The Two Towers", "Indented with a tab."),
		NewEntry("The Return of the King"),
	}
	if len(p.Entries) != len(want) {
		t.Fatalf("Entries length = %d, want %d", len(p.Entries), len(want))
	}
	for i, w := range want {
		if p.Entries[i] != w {
			t.Errorf("Entries[%d] = %+v, want %+v", i, p.Entries[i], w)
		}
	}
}

func TestParseDescriptionAfterBlankLine(t *testing.T) {
	// The blank line finalizes the first entry, so the indented line
	// that follows has no entry to attach to.
	input := "A title\n\n    an orphaned description\n"

	_, err := Parse("test", strings.NewReader(input))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("ParseError.Line = %d, want 3", perr.Line)
	}
	wantMsg := "description on line 3 does not correspond to any entry"
	if perr.Error() != wantMsg {
		t.Errorf("ParseError message = %q, want %q", perr.Error(), wantMsg)
	}
}

func TestParseIndentedFirstLine(t *testing.T) {
	_, err := Parse("test", strings.NewReader("    floating description\n"))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	if perr.Line != 1 {
		t.Errorf("ParseError.Line = %d, want 1", perr.Line)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no input", input: ""},
		{name: "blank lines only", input: "\n\n\n"},
		{name: "whitespace only lines", input: "   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error = %T, want *ParseError", err)
			}
			if perr.Line != 0 {
				t.Errorf("ParseError.Line = %d, want 0", perr.Line)
			}
			if perr.Error() != "cannot construct an empty plan" {
				t.Errorf("ParseError message = %q, want %q", perr.Error(), "cannot construct an empty plan")
			}
		})
	}
}

func TestParseTrailingWhitespaceOnlyLineEndsEntry(t *testing.T) {
	// A line of spaces trims down to a blank line and finalizes
	// the entry, just like a truly empty one.
	input := "First\n   \n    not a description of First\n"

	_, err := Parse("test", strings.NewReader(input))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("ParseError.Line = %d, want 3", perr.Line)
	}
}

func TestParseConsecutiveTitles(t *testing.T) {
	p, err := Parse("test", strings.NewReader("one\ntwo\nthree\n"))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if got := p.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	for i, e := range p.Entries {
		if e.Description != "" {
			t.Errorf("Entries[%d].Description = %q, want empty", i, e.Description)
		}
	}
}

func TestWriteText(t *testing.T) {
	p, err := New("test", []Entry{
		NewEntryWithDescription("First", "with a description"),
		NewEntry("Second"),
		NewEntryWithDescription("Third", "another description"),
	})
	if err != nil {
		t.Fatalf("failed to construct plan: %v", err)
	}

	var buf strings.Builder
	if err := p.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}

	want := "First\n    with a description\nSecond\nThird\n    another description\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteText() output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextRoundTrip(t *testing.T) {
	original, err := New("round-trip", []Entry{
		NewEntryWithDescription("First", "a multi line description joined into one"),
		NewEntry("Second"),
		NewEntryWithDescription("Third", "more text"),
	})
	if err != nil {
		t.Fatalf("failed to construct plan: %v", err)
	}

	var buf strings.Builder
	if err := original.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}

	restored, err := Parse("round-trip", strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if len(restored.Entries) != len(original.Entries) {
		t.Fatalf("Entries length = %d, want %d", len(restored.Entries), len(original.Entries))
	}
	for i, e := range original.Entries {
		if restored.Entries[i] != e {
			t.Errorf("Entries[%d] = %+v, want %+v", i, restored.Entries[i], e)
		}
	}
}
