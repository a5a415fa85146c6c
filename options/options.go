// Package options turns the command line of search into its filter.
//
// Parsing happens in two steps. Args.Parse tokenizes the raw arguments
// against the flag registry into MatchedFlags and free arguments; the
// Deduce functions then read MatchedFlags to build the fs.FileFilter.
package options

import (
	"errors"

	"github.com/dzonerzy/go-search/fs"
)

// BuildVersion is reported by --version. Set at link time with
// -ldflags "-X github.com/dzonerzy/go-search/options.BuildVersion=..."
var BuildVersion = "0.1.0"

// Options are the settings given by the user.
type Options struct {
	// Filter selects the files to print.
	Filter fs.FileFilter

	// Strictness used to resolve repeated flags.
	Strictness Strictness
}

// ResultKind tells which field of a Result is set.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultHelp
	ResultVersion
	ResultInvalid
)

// Result is the outcome of Parse.
type Result struct {
	Kind ResultKind

	Options *Options // ResultOK
	Frees   []string // ResultOK: the directories to search, in order

	Help    HelpString    // ResultHelp
	Version VersionString // ResultVersion

	Err *OptionsError // ResultInvalid
}

// Parse reads the whole command line, without the program name.
// Help takes priority over version, and both skip filter deduction.
func Parse(args []string, vars Vars) Result {
	strictness := StrictnessFrom(vars)

	matches, err := AllArgs.Parse(args, strictness)
	if err != nil {
		return invalid(err)
	}

	if help, ok := DeduceHelp(matches.Flags); ok {
		return Result{Kind: ResultHelp, Help: help}
	}
	if version, ok := DeduceVersion(matches.Flags, BuildVersion); ok {
		return Result{Kind: ResultVersion, Version: version}
	}

	filter, err := DeduceFilter(matches.Flags)
	if err != nil {
		return invalid(err)
	}

	return Result{
		Kind:    ResultOK,
		Options: &Options{Filter: filter, Strictness: strictness},
		Frees:   matches.Frees,
	}
}

// invalid wraps any option failure into an OptionsError result.
func invalid(err error) Result {
	var optErr *OptionsError
	if errors.As(err, &optErr) {
		return Result{Kind: ResultInvalid, Err: optErr}
	}
	var parseErr *ParseError
	errors.As(err, &parseErr)
	return Result{Kind: ResultInvalid, Err: &OptionsError{Type: ErrorTypeParse, Cause: parseErr}}
}
