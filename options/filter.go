package options

import (
	"unicode/utf8"

	"github.com/dzonerzy/go-search/fs"
)

// DeduceFilter builds the file filter from the matched flags.
func DeduceFilter(matches *MatchedFlags) (fs.FileFilter, error) {
	onlyDirs, err := matches.Has(OnlyDirs)
	if err != nil {
		return fs.FileFilter{}, err
	}
	includeDirs, err := matches.Has(IncludeDirs)
	if err != nil {
		return fs.FileFilter{}, err
	}
	if onlyDirs && includeDirs {
		return fs.FileFilter{}, &OptionsError{
			Type: ErrorTypeOptionsConflict,
			Args: [2]*Arg{OnlyDirs, IncludeDirs},
		}
	}

	name, err := DeduceNameFilter(matches)
	if err != nil {
		return fs.FileFilter{}, err
	}
	size, err := DeduceSizeFilter(matches)
	if err != nil {
		return fs.FileFilter{}, err
	}

	return fs.FileFilter{
		OnlyDirs:    onlyDirs,
		IncludeDirs: includeDirs,
		Name:        name,
		Size:        size,
	}, nil
}

// DeduceNameFilter compiles the --name value as a regular expression.
func DeduceNameFilter(matches *MatchedFlags) (fs.NameFilter, error) {
	raw, ok, err := requireValue(matches, Name)
	if err != nil || !ok {
		return fs.NameFilter{}, err
	}

	if !utf8.ValidString(raw) {
		return fs.NameFilter{}, &OptionsError{Type: ErrorTypeBadArgument, Args: [2]*Arg{Name}, Value: raw}
	}
	filter, err := fs.NewNameFilter(raw)
	if err != nil {
		return fs.NameFilter{}, &OptionsError{Type: ErrorTypeBadArgument, Args: [2]*Arg{Name}, Value: raw}
	}
	return filter, nil
}

// DeduceSizeFilter parses the --size value. Malformed numbers count as
// zero, see fs.ParseSizeFilter.
func DeduceSizeFilter(matches *MatchedFlags) (fs.SizeFilter, error) {
	raw, ok, err := requireValue(matches, Size)
	if err != nil || !ok {
		return fs.SizeFilter{}, err
	}
	return fs.ParseSizeFilter(raw), nil
}

// requireValue returns the value of arg. A flag that was given without a
// value is an ArgumentNeedsValue error when its policy is Necessary.
func requireValue(matches *MatchedFlags, arg *Arg) (string, bool, error) {
	value, ok, err := matches.Get(arg)
	if err != nil || ok {
		return value, ok, err
	}
	if arg.TakesValue == Necessary && matches.Count(arg) > 0 {
		return "", false, &OptionsError{Type: ErrorTypeArgumentNeedsValue, Args: [2]*Arg{arg}}
	}
	return "", false, nil
}
