package options

// MatchedFlags is the ordered list of flags recorded by the parser together
// with the strictness used to resolve repeated flags.
type MatchedFlags struct {
	flags      []ParsedFlag
	strictness Strictness
}

// NewMatchedFlags wraps an already parsed flag list.
func NewMatchedFlags(flags []ParsedFlag, strictness Strictness) *MatchedFlags {
	return &MatchedFlags{flags: flags, strictness: strictness}
}

// Flags returns the recorded flags in input order
func (m *MatchedFlags) Flags() []ParsedFlag { return m.flags }

// Strictness returns the duplicate handling mode
func (m *MatchedFlags) Strictness() Strictness { return m.strictness }

func (m *MatchedFlags) isStrict() bool { return m.strictness == ForbidRedundant }

// Has reports whether arg was given at least once.
func (m *MatchedFlags) Has(arg *Arg) (bool, error) {
	_, ok, err := m.HasWhere(func(f Flag) bool { return f.Matches(arg) })
	return ok, err
}

// HasWhere returns the flag matching predicate. In strict mode two or more
// matches are a Duplicate error; otherwise the last match wins.
func (m *MatchedFlags) HasWhere(predicate func(Flag) bool) (Flag, bool, error) {
	if !m.isStrict() {
		f, ok := m.HasWhereAny(predicate)
		return f, ok, nil
	}

	matched, err := m.single(func(pf ParsedFlag) bool { return predicate(pf.Flag) })
	if err != nil || matched == nil {
		return Flag{}, false, err
	}
	return matched.Flag, true, nil
}

// HasWhereAny returns the last flag matching predicate, ignoring strictness.
func (m *MatchedFlags) HasWhereAny(predicate func(Flag) bool) (Flag, bool) {
	for i := len(m.flags) - 1; i >= 0; i-- {
		if predicate(m.flags[i].Flag) {
			return m.flags[i].Flag, true
		}
	}
	return Flag{}, false
}

// Get returns the value given to arg. Occurrences recorded without a value
// are not considered.
func (m *MatchedFlags) Get(arg *Arg) (string, bool, error) {
	return m.GetWhere(func(f Flag) bool { return f.Matches(arg) })
}

// GetWhere returns the value of the flag matching predicate, following the
// same strictness rules as HasWhere.
func (m *MatchedFlags) GetWhere(predicate func(Flag) bool) (string, bool, error) {
	withValue := func(pf ParsedFlag) bool { return pf.HasValue && predicate(pf.Flag) }

	if m.isStrict() {
		matched, err := m.single(withValue)
		if err != nil || matched == nil {
			return "", false, err
		}
		return matched.Value, true, nil
	}

	for i := len(m.flags) - 1; i >= 0; i-- {
		if withValue(m.flags[i]) {
			return m.flags[i].Value, true, nil
		}
	}
	return "", false, nil
}

// Count returns how many times arg was given, whatever the strictness.
func (m *MatchedFlags) Count(arg *Arg) int {
	n := 0
	for _, pf := range m.flags {
		if pf.Flag.Matches(arg) {
			n++
		}
	}
	return n
}

// single returns the only entry matching keep, nil when there is none, or
// a Duplicate error naming the first two matches.
func (m *MatchedFlags) single(keep func(ParsedFlag) bool) (*ParsedFlag, error) {
	var first *ParsedFlag
	for i := range m.flags {
		if !keep(m.flags[i]) {
			continue
		}
		if first != nil {
			return nil, &OptionsError{
				Type:  ErrorTypeDuplicate,
				Flags: [2]Flag{first.Flag, m.flags[i].Flag},
			}
		}
		first = &m.flags[i]
	}
	return first, nil
}
