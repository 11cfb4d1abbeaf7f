// Package validate provides input validation for the tally CLI.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfields/tally/internal/errors"
)

const (
	// MaxTarget bounds targets to something a person could plausibly
	// count to; it also keeps the TUI layout sane.
	MaxTarget = 1_000_000_000
	// MaxStep bounds a single increment.
	MaxStep = 1_000_000
)

// invalidTarget ties a UserError to the ErrInvalidTarget sentinel so
// callers can match on either.
func invalidTarget(ue *errors.UserError) error {
	return fmt.Errorf("%w: %w", errors.ErrInvalidTarget, ue)
}

func invalidCount(ue *errors.UserError) error {
	return fmt.Errorf("%w: %w", errors.ErrInvalidCount, ue)
}

// Target parses raw user input for a target value.
//
// The input is trimmed first. Empty input means "no target" and is
// reported via unset=true with a nil error. Anything else must parse
// as a base-10 integer of at least 1; otherwise ErrInvalidTarget is
// returned and the caller should re-prompt with the input retained.
func Target(raw string) (value int, unset bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true, nil
	}

	n, convErr := strconv.Atoi(trimmed)
	if convErr != nil {
		return 0, false, invalidTarget(errors.NewUserErrorWithField(
			"target", raw,
			"Target is not a number",
			"Enter a whole number like '100', or leave empty to clear the target."))
	}
	if n <= 0 {
		return 0, false, invalidTarget(errors.NewUserErrorWithField(
			"target", raw,
			"Target must be positive",
			"Enter a whole number of 1 or more."))
	}
	if n > MaxTarget {
		return 0, false, invalidTarget(errors.NewUserErrorWithField(
			"target", raw,
			"Target too large",
			"Targets must be at most 1000000000."))
	}

	return n, false, nil
}

// Step parses raw user input for an increment amount.
func Step(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, invalidCount(errors.NewUserError(
			"Count is empty",
			"Enter a whole number like '1' or '10'."))
	}

	n, convErr := strconv.Atoi(trimmed)
	if convErr != nil {
		return 0, invalidCount(errors.NewUserErrorWithField(
			"count", raw,
			"Count is not a number",
			"Enter a whole number like '1' or '10'."))
	}
	if n <= 0 || n > MaxStep {
		return 0, invalidCount(errors.NewUserErrorWithField(
			"count", raw,
			"Count out of range",
			"Enter a whole number between 1 and 1000000."))
	}

	return n, nil
}
