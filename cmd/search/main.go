// Command search lists the files below the given directories that match
// the filters given on the command line.
package main

import (
	"bufio"
	"fmt"
	"os"

	searchio "github.com/dzonerzy/go-search/io"
	"github.com/dzonerzy/go-search/options"
	"github.com/dzonerzy/go-search/search"
	"github.com/dzonerzy/go-search/theme"
)

func main() {
	iom := searchio.New()
	os.Exit(run(os.Args[1:], options.OSVars{}, iom))
}

func run(args []string, vars options.Vars, iom *searchio.IOManager) int {
	logger := searchio.NewLogger(iom)
	if vars.Get(options.EnvDebug) != "" {
		logger.WithLevel(searchio.LevelDebug)
	}

	result := options.Parse(args, vars)

	switch result.Kind {
	case options.ResultHelp:
		fmt.Fprint(iom.Out(), result.Help)
		return search.ExitSuccess

	case options.ResultVersion:
		fmt.Fprint(iom.Out(), result.Version)
		return search.ExitSuccess

	case options.ResultInvalid:
		logger.Error("%v", result.Err)
		for _, hint := range result.Err.Suggestions() {
			logger.Warning("  %s", hint)
		}
		return search.ExitCode(search.ExitInvalidOptions, result.Err)

	case options.ResultOK:
	}

	paths := result.Frees
	if len(paths) == 0 {
		paths = []string{"."}
	}

	t, err := theme.For(iom, vars.Get(options.EnvColors))
	if err != nil {
		logger.Warning("ignoring %s: %v", options.EnvColors, err)
	}

	out := bufio.NewWriter(iom.Out())
	s := &search.Search{
		InputPaths: paths,
		Options:    result.Options,
		Writer:     out,
		Theme:      t,
		Logger:     logger,
	}

	status, err := s.Run()
	if err == nil {
		err = out.Flush()
	}
	if err != nil && search.ExitCode(status, err) != search.ExitSuccess {
		logger.Error("%v", err)
	}
	return search.ExitCode(status, err)
}
