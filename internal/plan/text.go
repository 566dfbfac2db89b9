package plan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError describes a violation of the plain text plan format.
// Line is the 1-based input line the error refers to, or 0 when the
// error is not tied to a specific line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Parse reads a plan from its plain text form.
//
// The format is a series of unindented lines, one per entry title,
// each optionally followed by indented lines holding the entry's
// description. Any amount of leading tabs or spaces marks a
// description line, and a blank line terminates the entry in
// progress. The resulting plan is acyclic.
func Parse(name string, r io.Reader) (*Plan, error) {
	var entries []Entry
	var current *Entry

	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		l := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		// A blank line ends the entry in progress.
		if l == "" {
			if current != nil {
				entries = append(entries, *current)
				current = nil
			}
			continue
		}

		first, _ := utf8.DecodeRuneInString(l)
		if unicode.IsSpace(first) {
			if current == nil {
				return nil, &ParseError{
					Line: line,
					Msg:  fmt.Sprintf("description on line %d does not correspond to any entry", line),
				}
			}
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += strings.TrimSpace(l)
		} else {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{Title: l}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read line: %w", err)
	}

	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) == 0 {
		return nil, &ParseError{Msg: "cannot construct an empty plan"}
	}
	return New(name, entries)
}

// WriteText writes the plan in its plain text form. The format is
// documented on Parse.
func (p *Plan) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range p.Entries {
		if _, err := fmt.Fprintln(bw, e.Title); err != nil {
			return fmt.Errorf("could not write text output: %w", err)
		}
		if e.Description != "" {
			if _, err := fmt.Fprintf(bw, "    %s\n", e.Description); err != nil {
				return fmt.Errorf("could not write text output: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write text output: %w", err)
	}
	return nil
}
