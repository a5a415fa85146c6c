package benchmark_test

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-search/options"
)

// Benchmark the search command line
// Every parser is given the same flags: a regex name filter, a size
// expression, a boolean and two directories

var searchArgs = []string{"-n", `\.go$`, "--size", "+1024k", "-d", "src", "docs"}

func BenchmarkSearchCLI_Search(b *testing.B) {
	vars := options.MapVars{}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := options.Parse(searchArgs, vars)
		if result.Kind != options.ResultOK || len(result.Frees) != 2 {
			b.Fatal(result.Err)
		}
	}
}

func BenchmarkSearchCLI_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
		flags.SetOutput(io.Discard)
		name := flags.StringP("name", "n", "", "filter by name")
		flags.StringP("size", "s", "", "filter by size")
		flags.BoolP("only-dirs", "d", false, "only directories")
		flags.Bool("include-dirs", false, "include directories")
		if err := flags.Parse(searchArgs); err != nil || *name == "" || flags.NArg() != 2 {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearchCLI_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "search",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().StringP("name", "n", "", "filter by name")
		rootCmd.Flags().StringP("size", "s", "", "filter by size")
		rootCmd.Flags().BoolP("only-dirs", "d", false, "only directories")
		rootCmd.Flags().Bool("include-dirs", false, "include directories")
		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs(searchArgs)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSearchCLI_Urfave(b *testing.B) {
	args := append([]string{"search"}, searchArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:   "search",
			Writer: io.Discard,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "filter by name"},
				&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "filter by size"},
				&cli.BoolFlag{Name: "only-dirs", Aliases: []string{"d"}, Usage: "only directories"},
				&cli.BoolFlag{Name: "include-dirs", Usage: "include directories"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark repeated flags
// search keeps every occurrence and resolves the last one on query

var repeatedArgs = []string{"-n", "a", "-n", "b", "--name", "c", "-n", "d", "dir"}

func BenchmarkRepeatedFlags_Search(b *testing.B) {
	vars := options.MapVars{}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := options.Parse(repeatedArgs, vars)
		if result.Kind != options.ResultOK || !result.Options.Filter.Name.Matches("d") {
			b.Fatal(result.Err)
		}
	}
}

func BenchmarkRepeatedFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
		flags.SetOutput(io.Discard)
		name := flags.StringP("name", "n", "", "filter by name")
		if err := flags.Parse(repeatedArgs); err != nil || *name != "d" {
			b.Fatal(err)
		}
	}
}
