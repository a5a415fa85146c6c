package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	searchio "github.com/dzonerzy/go-search/io"
	"github.com/dzonerzy/go-search/options"
	"github.com/dzonerzy/go-search/search"
)

func testIO() (*searchio.IOManager, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	iom := searchio.New().WithOut(&out).WithErr(&errOut).WithEnv(func(string) string { return "" })
	return iom, &out, &errOut
}

func TestRunHelpAndVersion(t *testing.T) {
	iom, out, _ := testIO()
	if code := run([]string{"--help", "--version"}, options.MapVars{}, iom); code != search.ExitSuccess {
		t.Errorf("Expected success, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "Usage:") {
		t.Errorf("Expected usage, got %q", out.String())
	}

	iom, out, _ = testIO()
	if code := run([]string{"-v"}, options.MapVars{}, iom); code != search.ExitSuccess {
		t.Errorf("Expected success, got %d", code)
	}
	if got := out.String(); got != "search v"+options.BuildVersion+"\n" {
		t.Errorf("Unexpected version banner %q", got)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	iom, out, errOut := testIO()
	code := run([]string{"--nmae", "x"}, options.MapVars{}, iom)

	if code != search.ExitInvalidOptions {
		t.Errorf("Expected invalid options exit code, got %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	want := "Unknown argument --nmae\n  Did you mean '--name'?\n"
	if got := errOut.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestRunStrictFromEnvironment(t *testing.T) {
	iom, _, errOut := testIO()
	code := run([]string{"-d", "--only-dirs", t.TempDir()}, options.MapVars{options.EnvStrict: "1"}, iom)

	if code != search.ExitInvalidOptions {
		t.Errorf("Expected invalid options exit code, got %d", code)
	}
	if !strings.Contains(errOut.String(), "Duplicated flags : -d --only-dirs") {
		t.Errorf("Unexpected stderr %q", errOut.String())
	}
}

func TestRunSearch(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"keep.go", "skip.md"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	iom, out, errOut := testIO()
	code := run([]string{"-n", `\.go$`, root}, options.MapVars{options.EnvColors: "*.go=32"}, iom)
	if code != search.ExitSuccess {
		t.Fatalf("Expected success, got %d (stderr: %s)", code, errOut.String())
	}
	if got, want := out.String(), filepath.Join(root, "keep.go")+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	iom, _, errOut := testIO()
	if code := run([]string{file}, options.MapVars{}, iom); code != search.ExitNotDirectory {
		t.Errorf("Expected not a directory exit code, got %d", code)
	}
	if !strings.Contains(errOut.String(), "not a directory") {
		t.Errorf("Unexpected stderr %q", errOut.String())
	}
}

func TestRunDebugLogging(t *testing.T) {
	iom, _, errOut := testIO()
	code := run([]string{t.TempDir()}, options.MapVars{options.EnvDebug: "1"}, iom)
	if code != search.ExitSuccess {
		t.Fatalf("Expected success, got %d", code)
	}
	if !strings.Contains(errOut.String(), "reading ") {
		t.Errorf("Expected debug output on stderr, got %q", errOut.String())
	}
}
