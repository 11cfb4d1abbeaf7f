package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidTarget:     "Targets must be whole numbers of 1 or more, like '100'. Leave the input empty to clear the target.",
	ErrInvalidCount:      "Counts must be whole numbers, like '1' or '10'.",
	ErrNoTarget:          "Use 'tally target <number>' to set one.",
	ErrMilestoneNotFound: "Use 'tally history' to see recorded milestones.",
	ErrInvalidSince:      "Try expressions like 'yesterday', '2 days ago', or 'last week'.",
	ErrDatabaseCorrupted: "Delete the data directory to start fresh; your count cannot be recovered.",
	ErrDiskFull:          "Free up disk space and try again. Your count is preserved in memory for this session.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}

// FormatError renders an error with its suggestion, if any.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if s := GetSuggestion(err); s != "" {
		msg += "\n  " + s
	}
	return msg
}
