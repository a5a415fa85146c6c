package options

import (
	"strings"
)

// Values is an optional list of example values attached to a value policy.
// A nil list means the flag has no suggestions.
type Values []string

// TakesValue describes how the parser consumes a value for a flag.
type TakesValue int

const (
	// Forbidden flags never take a value.
	Forbidden TakesValue = iota
	// Necessary flags must be given a value.
	Necessary
	// Optional flags take the next value when one is available.
	Optional
)

// String returns the lowercase policy name
func (t TakesValue) String() string {
	switch t {
	case Forbidden:
		return "forbidden"
	case Necessary:
		return "necessary"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// Arg is the static definition of one recognized flag.
type Arg struct {
	Short      byte // 0 when the flag has no short form
	Long       string
	TakesValue TakesValue
	Values     Values // suggestions for Necessary and Optional flags
}

// HasShort reports whether the arg can be given in short form.
func (a *Arg) HasShort() bool { return a.Short != 0 }

func (a *Arg) String() string {
	if a.HasShort() {
		return "--" + a.Long + " (-" + string(a.Short) + ")"
	}
	return "--" + a.Long
}

// Flag is a resolved occurrence of an Arg, either in short or long form.
// Flags are comparable with ==.
type Flag struct {
	short byte
	long  string
}

// ShortFlag returns the short form occurrence of b.
func ShortFlag(b byte) Flag { return Flag{short: b} }

// LongFlag returns the long form occurrence of name.
func LongFlag(name string) Flag { return Flag{long: name} }

// IsShort reports whether the flag was given in short form
func (f Flag) IsShort() bool { return f.short != 0 }

// Short returns the short byte, or 0 for long flags
func (f Flag) Short() byte { return f.short }

// Long returns the long name, or "" for short flags
func (f Flag) Long() string { return f.long }

// Matches reports whether the flag is an occurrence of arg.
func (f Flag) Matches(arg *Arg) bool {
	if f.IsShort() {
		return arg.HasShort() && arg.Short == f.short
	}
	return arg.Long == f.long
}

func (f Flag) String() string {
	if f.IsShort() {
		return "-" + string(f.short)
	}
	return "--" + f.long
}

// Strictness controls how repeated flags are resolved by MatchedFlags.
type Strictness int

const (
	// UseLastArgument resolves repeated flags to their last occurrence.
	UseLastArgument Strictness = iota
	// ForbidRedundant turns any repeated flag into a Duplicate error.
	ForbidRedundant
)

// Args is the grammar registry: an ordered, immutable list of flag
// definitions. Lookups are linear scans.
type Args []*Arg

// LookupShort finds the arg whose short form is b.
func (as Args) LookupShort(b byte) (*Arg, error) {
	for _, arg := range as {
		if arg.HasShort() && arg.Short == b {
			return arg, nil
		}
	}
	return nil, &ParseError{Type: ErrorTypeUnknownShortArgument, Short: b}
}

// LookupLong finds the arg whose long form is name.
func (as Args) LookupLong(name string) (*Arg, error) {
	for _, arg := range as {
		if arg.Long == name {
			return arg, nil
		}
	}
	return nil, &ParseError{
		Type:       ErrorTypeUnknownArgument,
		Name:       name,
		Suggestion: as.suggestLong(name),
	}
}

// ParsedFlag is one recorded flag occurrence with its optional value.
type ParsedFlag struct {
	Flag     Flag
	Value    string
	HasValue bool
}

// Matches is the result of a successful parse.
type Matches struct {
	Flags *MatchedFlags
	Frees []string // positional operands, in input order
}

// Parse tokenizes inputs against the registry. The first lookup or value
// policy failure aborts the parse and no partial result is returned.
//
//nolint:gocognit,gocyclo,cyclop // The token state machine is kept in one place.
func (as Args) Parse(inputs []string, strictness Strictness) (*Matches, error) {
	parsing := true

	flags := make([]ParsedFlag, 0, len(inputs))
	frees := make([]string, 0, len(inputs))

	position := 0

	// next consumes the token following the current one, if there is one
	next := func() (string, bool) {
		if position+1 >= len(inputs) {
			return "", false
		}
		position++
		return inputs[position], true
	}

	for ; position < len(inputs); position++ {
		arg := inputs[position]

		switch {
		case !parsing:
			frees = append(frees, arg)

		case arg == "--":
			parsing = false

		case strings.HasPrefix(arg, "--"):
			name := arg[2:]

			if before, after, ok := splitOnEqual(name); ok {
				def, err := as.LookupLong(before)
				if err != nil {
					return nil, err
				}
				flag := LongFlag(def.Long)
				if def.TakesValue == Forbidden {
					return nil, &ParseError{Type: ErrorTypeForbiddenValue, Flag: flag}
				}
				flags = append(flags, ParsedFlag{Flag: flag, Value: after, HasValue: true})
				continue
			}

			def, err := as.LookupLong(name)
			if err != nil {
				return nil, err
			}
			flag := LongFlag(def.Long)

			switch def.TakesValue {
			case Forbidden:
				flags = append(flags, ParsedFlag{Flag: flag})
			case Necessary:
				value, ok := next()
				if !ok {
					return nil, &ParseError{Type: ErrorTypeNeedsValue, Flag: flag, Values: def.Values}
				}
				flags = append(flags, ParsedFlag{Flag: flag, Value: value, HasValue: true})
			case Optional:
				value, ok := next()
				flags = append(flags, ParsedFlag{Flag: flag, Value: value, HasValue: ok})
			}

		case strings.HasPrefix(arg, "-") && arg != "-":
			cluster := arg[1:]

			// -abcx=fgh: a, b and c take no value, x takes "fgh"
			if before, after, ok := splitOnEqual(cluster); ok {
				last := len(before) - 1
				for i := 0; i < last; i++ {
					def, err := as.LookupShort(before[i])
					if err != nil {
						return nil, err
					}
					flag := ShortFlag(before[i])
					if def.TakesValue == Necessary {
						return nil, &ParseError{Type: ErrorTypeNeedsValue, Flag: flag, Values: def.Values}
					}
					flags = append(flags, ParsedFlag{Flag: flag})
				}

				def, err := as.LookupShort(before[last])
				if err != nil {
					return nil, err
				}
				flag := ShortFlag(before[last])
				if def.TakesValue == Forbidden {
					return nil, &ParseError{Type: ErrorTypeForbiddenValue, Flag: flag}
				}
				flags = append(flags, ParsedFlag{Flag: flag, Value: after, HasValue: true})
				continue
			}

			// -abxyfgh: a and b take no value, x takes "yfgh"
		fused:
			for i := 0; i < len(cluster); i++ {
				def, err := as.LookupShort(cluster[i])
				if err != nil {
					return nil, err
				}
				flag := ShortFlag(cluster[i])

				if def.TakesValue == Forbidden {
					flags = append(flags, ParsedFlag{Flag: flag})
					continue
				}

				if i < len(cluster)-1 {
					flags = append(flags, ParsedFlag{Flag: flag, Value: cluster[i+1:], HasValue: true})
					break fused
				}

				if value, ok := next(); ok {
					flags = append(flags, ParsedFlag{Flag: flag, Value: value, HasValue: true})
				} else if def.TakesValue == Optional {
					flags = append(flags, ParsedFlag{Flag: flag})
				} else {
					return nil, &ParseError{Type: ErrorTypeNeedsValue, Flag: flag, Values: def.Values}
				}
			}

		default:
			frees = append(frees, arg)
		}
	}

	return &Matches{
		Flags: &MatchedFlags{flags: flags, strictness: strictness},
		Frees: frees,
	}, nil
}

// splitOnEqual splits s at its first '=' when there is at least one byte
// on each side.
func splitOnEqual(s string) (before, after string, ok bool) {
	i := strings.IndexByte(s, '=')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
