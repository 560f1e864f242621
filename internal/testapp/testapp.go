// Package testapp creates throwaway Go modules on disk and loads them the way the
// generate command does. It is used by tests across the module.
package testapp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/dst/decorator"
	"golang.org/x/tools/go/packages"
)

// LoadMode is the packages mode the generator loads applications with.
const LoadMode = packages.LoadSyntax | packages.NeedModule

// Create writes a module named modulePath into a temporary directory. files maps
// slash separated paths relative to the module root to their contents.
// It returns the module directory.
func Create(t *testing.T, modulePath string, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	write(t, filepath.Join(dir, "go.mod"), "module "+modulePath+"\n\ngo 1.24\n")
	for name, contents := range files {
		write(t, filepath.Join(dir, filepath.FromSlash(name)), contents)
	}
	return dir
}

// Load creates a module like Create and loads every package in it.
// Loading shells out to the go command, so it is skipped in short mode.
func Load(t *testing.T, modulePath string, files map[string]string) (string, []*decorator.Package) {
	t.Helper()

	// integration tests are slow, so we skip them in short mode
	if testing.Short() {
		t.Skip("Skipping package loading tests in short mode")
	}

	dir := Create(t, modulePath, files)
	pkgs, err := decorator.Load(&packages.Config{Dir: dir, Mode: LoadMode}, "./...")
	if err != nil {
		t.Fatalf("failed to load test app: %v", err)
	}
	return dir, pkgs
}

func write(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}
