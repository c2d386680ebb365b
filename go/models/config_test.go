package models

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestPrefixPath(t *testing.T) {
	dir, err := ioutil.TempDir("", "sandlua-prefix")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "bin", "ls"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	if got := c.PrefixPath("/bin/ls"); got != "/bin/ls" {
		t.Fatalf("no prefix: got %s", got)
	}
	c.LoadPrefix = dir
	if got := c.PrefixPath("/bin/ls"); got != filepath.Join(dir, "bin", "ls") {
		t.Fatalf("got %s", got)
	}
	if got := c.PrefixPath("/bin/missing"); got != "/bin/missing" {
		t.Fatalf("missing file should not be prefixed, got %s", got)
	}
	if got := c.PrefixPath("relative/ls"); got != "relative/ls" {
		t.Fatalf("relative path should not be prefixed, got %s", got)
	}
}
