package main

import (
	"os"
	"testing"
)

// chdir is a Go 1.21-compatible stand-in for testing.T.Chdir (Go 1.24+):
// it changes the working directory and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
