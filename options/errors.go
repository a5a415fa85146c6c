package options

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-search/internal/fuzzy"
)

// ErrorType represents error categories for option handling.
// These categories drive the rendered message and exit-code mapping.
type ErrorType string

// Token level categories, carried by ParseError
const (
	ErrorTypeNeedsValue           ErrorType = "needs_value"
	ErrorTypeForbiddenValue       ErrorType = "forbidden_value"
	ErrorTypeUnknownShortArgument ErrorType = "unknown_short_argument"
	ErrorTypeUnknownArgument      ErrorType = "unknown_argument"
)

// Deduction level categories, carried by OptionsError
const (
	ErrorTypeDuplicate          ErrorType = "duplicate"
	ErrorTypeBadArgument        ErrorType = "bad_argument"
	ErrorTypeArgumentNeedsValue ErrorType = "argument_needs_value"
	ErrorTypeParse              ErrorType = "parse_error"
	ErrorTypeOptionsConflict    ErrorType = "options_conflict"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints
const maxSuggestionDistance = 2

// ParseError is a token level failure. The first one aborts parsing.
type ParseError struct {
	Type ErrorType

	Flag   Flag   // NeedsValue, ForbiddenValue
	Values Values // NeedsValue: the policy's suggestion list, may be nil
	Short  byte   // UnknownShortArgument
	Name   string // UnknownArgument

	Suggestion string // closest known long name for UnknownArgument
}

func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeNeedsValue:
		msg := "Flag " + e.Flag.String() + " needs a value"
		if len(e.Values) > 0 {
			msg += " (choices: " + strings.Join(e.Values, ", ") + ")"
		}
		return msg
	case ErrorTypeForbiddenValue:
		return "Flag " + e.Flag.String() + " cannot take a value"
	case ErrorTypeUnknownShortArgument:
		return "Unknown argument -" + string(e.Short)
	case ErrorTypeUnknownArgument:
		return "Unknown argument --" + e.Name
	default:
		return string(e.Type)
	}
}

// OptionsError is a failure to turn matched flags into options.
type OptionsError struct {
	Type ErrorType

	Flags [2]Flag // Duplicate
	Args  [2]*Arg // BadArgument and ArgumentNeedsValue use Args[0], OptionsConflict uses both
	Value string  // BadArgument: the raw value given

	Cause *ParseError // ParseError
}

func (e *OptionsError) Error() string {
	switch e.Type {
	case ErrorTypeDuplicate:
		return fmt.Sprintf("Duplicated flags : %s %s", e.Flags[0], e.Flags[1])
	case ErrorTypeBadArgument:
		return fmt.Sprintf("Bad argument for flag %s. Arg passed : %s", e.Args[0], e.Value)
	case ErrorTypeArgumentNeedsValue:
		return fmt.Sprintf("Argument %s needs a value", e.Args[0])
	case ErrorTypeOptionsConflict:
		return fmt.Sprintf("Conflict between args : %s %s", e.Args[0], e.Args[1])
	case ErrorTypeParse:
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return string(e.Type)
	default:
		return string(e.Type)
	}
}

// Unwrap exposes the token level cause of ErrorTypeParse errors.
func (e *OptionsError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Suggestions returns user facing hints for the error, if any.
func (e *OptionsError) Suggestions() []string {
	if e.Cause == nil {
		return nil
	}
	var hints []string
	if e.Cause.Suggestion != "" {
		hints = append(hints, fmt.Sprintf("Did you mean '--%s'?", e.Cause.Suggestion))
	}
	if e.Cause.Type == ErrorTypeNeedsValue && len(e.Cause.Values) > 0 {
		hints = append(hints, fmt.Sprintf("For example: %s %s", e.Cause.Flag, e.Cause.Values[0]))
	}
	return hints
}

// suggestLong finds the registered long name closest to name.
func (as Args) suggestLong(name string) string {
	longs := make([]string, 0, len(as))
	for _, arg := range as {
		longs = append(longs, arg.Long)
	}
	return fuzzy.FindBestFlag(name, longs, maxSuggestionDistance)
}
