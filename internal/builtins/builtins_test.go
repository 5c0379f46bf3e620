package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardenvale/shoe/internal/pathindex"
	"github.com/ardenvale/shoe/internal/theme"
)

func newTestContext(stdin string) *Context {
	return &Context{
		Stdin:     []byte(stdin),
		Stdout:    &bytes.Buffer{},
		Colors:    theme.New(0),
		PathIndex: pathindex.Build(""),
	}
}

func TestEchoJoinsArgsWithNewline(t *testing.T) {
	ctx := newTestContext("")
	if _, err := echo(ctx, []string{"hello", "world"}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "hello world\n" {
		t.Errorf("echo output = %q, want %q", got, "hello world\n")
	}
}

func TestEchoNoNewlineFlag(t *testing.T) {
	ctx := newTestContext("")
	if _, err := echo(ctx, []string{"-n", "hi"}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "hi" {
		t.Errorf("echo output = %q, want %q", got, "hi")
	}
}

func TestEchoPassesStdinThroughUntouched(t *testing.T) {
	ctx := newTestContext("piped bytes")
	if _, err := echo(ctx, []string{"ignored"}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "piped bytes" {
		t.Errorf("echo output = %q, want %q", got, "piped bytes")
	}
}

func TestEchoDecodesHexEscapes(t *testing.T) {
	ctx := newTestContext("")
	if _, err := echo(ctx, []string{`\x41\x42`}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "AB\n" {
		t.Errorf("echo output = %q, want %q", got, "AB\n")
	}
}

func TestCatWithNoArgsPrintsMeow(t *testing.T) {
	ctx := newTestContext("")
	if _, err := cat(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "meow\n" {
		t.Errorf("cat output = %q, want %q", got, "meow\n")
	}
}

func TestCatReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	os.WriteFile(path, []byte("contents"), 0o644)

	ctx := newTestContext("")
	if _, err := cat(ctx, []string{path}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Stdout.String(); got != "contents" {
		t.Errorf("cat output = %q, want %q", got, "contents")
	}
}

func TestPwdPrintsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	oldwd, _ := os.Getwd()
	defer os.Chdir(oldwd)
	os.Chdir(dir)

	ctx := newTestContext("")
	if _, err := pwd(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if ctx.Stdout.Len() == 0 {
		t.Error("pwd produced no output")
	}
}

func TestLsListsDirectoriesBeforeFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644)
	os.Mkdir(filepath.Join(dir, "z-dir"), 0o755)

	ctx := newTestContext("")
	if _, err := ls(ctx, []string{dir}); err != nil {
		t.Fatal(err)
	}
	got := ctx.Stdout.String()
	if got == "" {
		t.Fatal("ls produced no output")
	}
	if strings.Index(got, "z-dir") > strings.Index(got, "b.txt") {
		t.Errorf("ls output = %q, want z-dir listed before b.txt", got)
	}
}

func TestLsMissingPathReturnsDirectoryNotFound(t *testing.T) {
	ctx := newTestContext("")
	if _, err := ls(ctx, []string{"/does/not/exist/anywhere"}); err == nil {
		t.Error("ls() error = nil, want directory-not-found error")
	}
}

func TestCpGlobCopiesMultipleMatchesIntoDir(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	os.WriteFile(filepath.Join(src, "report1.csv"), []byte("1"), 0o644)
	os.WriteFile(filepath.Join(src, "report2.csv"), []byte("2"), 0o644)

	ctx := newTestContext("")
	pattern := filepath.Join(src, "report*.csv")
	if _, err := cp(ctx, []string{pattern, dest}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "report1.csv")); err != nil {
		t.Error("report1.csv was not copied")
	}
	if _, err := os.Stat(filepath.Join(dest, "report2.csv")); err != nil {
		t.Error("report2.csv was not copied")
	}
}

func TestCpGlobMultiMatchIntoFileDestFails(t *testing.T) {
	src := t.TempDir()
	destFile := filepath.Join(t.TempDir(), "notadir")
	os.WriteFile(destFile, nil, 0o644)
	os.WriteFile(filepath.Join(src, "a.log"), nil, 0o644)
	os.WriteFile(filepath.Join(src, "b.log"), nil, 0o644)

	ctx := newTestContext("")
	pattern := filepath.Join(src, "*.log")
	if _, err := cp(ctx, []string{pattern, destFile}); err == nil {
		t.Error("cp() error = nil, want ambiguous-target error")
	}
}

func TestRmRemovesGlobMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temp.bak")
	os.WriteFile(path, nil, 0o644)

	ctx := newTestContext("")
	if _, err := rm(ctx, []string{filepath.Join(dir, "temp*.bak")}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after rm")
	}
}

func TestMkdirCreatesNestedDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	ctx := newTestContext("")
	if _, err := mkdir(ctx, []string{dir}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Error("mkdir did not create the nested directory")
	}
}

func TestThemeListsAllNamesWithNoArgs(t *testing.T) {
	ctx := newTestContext("")
	result, err := themeCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != Ok {
		t.Errorf("Outcome = %v, want Ok", result.Outcome)
	}
	if ctx.Stdout.Len() == 0 {
		t.Error("theme produced no output")
	}
}

func TestThemeSwitchReturnsUpdateTheme(t *testing.T) {
	ctx := newTestContext("")
	result, err := themeCmd(ctx, []string{"earth"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != UpdateTheme || result.ThemeIndex != 1 {
		t.Errorf("themeCmd(earth) = %+v, want UpdateTheme index 1", result)
	}
}

func TestThemeUnknownNameErrors(t *testing.T) {
	ctx := newTestContext("")
	if _, err := themeCmd(ctx, []string{"not-a-real-theme"}); err == nil {
		t.Error("themeCmd() error = nil, want unknown-theme error")
	}
}

func TestExitReturnsExitOutcome(t *testing.T) {
	ctx := newTestContext("")
	result, err := exit(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != Exit {
		t.Errorf("Outcome = %v, want Exit", result.Outcome)
	}
}

func TestLookupFindsEveryRegisteredName(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) = false, want true", name)
		}
	}
	if _, ok := Lookup("not-a-builtin"); ok {
		t.Error("Lookup(unknown) = true, want false")
	}
}
