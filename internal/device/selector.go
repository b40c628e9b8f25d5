package device

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter is the one suspend point of the selection loop: one line of
// interactive input per call.
type Prompter interface {
	PromptLine(prompt string) (string, error)
}

// maxInvalidAttempts is how many consecutive invalid inputs are tolerated
// before the full list is redisplayed. Redisplay is a recovery, not a
// failure; the loop never aborts on bad input.
const maxInvalidAttempts = 3

// OutcomeKind classifies how a selection session resolved.
type OutcomeKind int

const (
	// OutcomeNone means there was nothing selectable.
	OutcomeNone OutcomeKind = iota
	// OutcomeDevice means a concrete device was chosen.
	OutcomeDevice
	// OutcomeDefault means the user chose the escape token, deferring to
	// the source's default target.
	OutcomeDefault
)

// Outcome is the terminal state of one selection session.
type Outcome struct {
	Kind   OutcomeKind
	Device Device
}

// SelectOptions tunes one selection session.
type SelectOptions struct {
	// Title is printed above the list.
	Title string

	// EscapeToken, when non-empty, resolves to OutcomeDefault. Matching is
	// case-insensitive.
	EscapeToken string
	// EscapeHint is shown next to the prompt when EscapeToken is set.
	EscapeHint string

	// Intercept, when set, gets first look at every input line. A true
	// return means the surrounding workflow handled the line and the
	// selector re-prompts without counting an invalid attempt.
	Intercept func(line string) bool
}

// Selector drives the numbered interactive choice across categorized
// devices.
type Selector struct {
	prompt Prompter
	out    io.Writer
}

func NewSelector(prompt Prompter, out io.Writer) *Selector {
	return &Selector{prompt: prompt, out: out}
}

// Select renders the categorized list and resolves to exactly one outcome.
// Offline devices are displayed but never selectable. Indices are 1-based
// and continuous across categories. An empty selectable set resolves to
// OutcomeNone without prompting.
func (s *Selector) Select(devices Categorized, opts SelectOptions) (Outcome, error) {
	selectable := s.render(devices, opts)
	if len(selectable) == 0 {
		return Outcome{Kind: OutcomeNone}, nil
	}

	invalid := 0
	for {
		input, err := s.prompt.PromptLine(s.promptText(opts))
		if err != nil {
			return Outcome{}, fmt.Errorf("read selection: %w", err)
		}
		input = strings.TrimSpace(input)

		if opts.Intercept != nil && opts.Intercept(input) {
			continue
		}

		if opts.EscapeToken != "" && strings.EqualFold(input, opts.EscapeToken) {
			return Outcome{Kind: OutcomeDefault}, nil
		}

		if n, err := strconv.Atoi(input); err == nil {
			for _, d := range selectable {
				if d.Index == n {
					return Outcome{Kind: OutcomeDevice, Device: d}, nil
				}
			}
		}

		invalid++
		if invalid >= maxInvalidAttempts {
			invalid = 0
			selectable = s.render(devices, opts)
			continue
		}
		fmt.Fprintf(s.out, "Invalid selection %q, try again.\n", input)
	}
}

// render prints the grouped list and returns the selectable records with
// session indices assigned in display order.
func (s *Selector) render(devices Categorized, opts SelectOptions) []Device {
	if opts.Title != "" {
		fmt.Fprintf(s.out, "\n%s\n", opts.Title)
	}

	var selectable []Device
	next := 1

	if len(devices.Physical) > 0 {
		fmt.Fprintln(s.out, "\nConnected devices:")
		for _, d := range devices.Physical {
			d.Index = next
			next++
			s.printSelectable(d)
			selectable = append(selectable, d)
		}
	}

	if len(devices.Offline) > 0 {
		fmt.Fprintln(s.out, "\nOffline devices (not selectable):")
		for _, d := range devices.Offline {
			fmt.Fprintf(s.out, "      %s%s\n", d.Name, versionSuffix(d))
		}
	}

	if len(devices.Simulators) > 0 {
		fmt.Fprintln(s.out, "\nSimulators:")
		for _, d := range devices.Simulators {
			d.Index = next
			next++
			s.printSelectable(d)
			selectable = append(selectable, d)
		}
	}

	return selectable
}

func (s *Selector) printSelectable(d Device) {
	fmt.Fprintf(s.out, "  %2d) %s%s\n", d.Index, d.Name, versionSuffix(d))
}

func (s *Selector) promptText(opts SelectOptions) string {
	if opts.EscapeToken != "" && opts.EscapeHint != "" {
		return fmt.Sprintf("Select a device (number, or %q for %s): ", opts.EscapeToken, opts.EscapeHint)
	}
	return "Select a device (number): "
}

func versionSuffix(d Device) string {
	if d.OSVersion == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", d.OSVersion)
}
