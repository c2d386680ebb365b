package models

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Color    bool
	Verbose  bool
	HexWidth int
	Prompt   string
	// absolute paths given to commands are looked up under this directory first
	LoadPrefix  string
	HistoryFile string

	// nil means stdout
	Output io.Writer
}

func NewConfig() *Config {
	return &Config{
		HexWidth: 16,
		Prompt:   "> ",
	}
}

func (c *Config) resolveSymlink(path, target string) string {
	link, err := os.Lstat(target)
	if err != nil {
		return path
	}
	if link.Mode()&os.ModeSymlink != 0 {
		if linked, err := os.Readlink(target); err == nil {
			if !strings.HasPrefix(linked, "/") {
				return filepath.Join(filepath.Dir(target), linked)
			}
			return c.PrefixPath(linked)
		}
	}
	return target
}

// PrefixPath maps an absolute path into LoadPrefix when the prefixed file
// exists, so a sysroot can be inspected in place.
func (c *Config) PrefixPath(path string) string {
	if c.LoadPrefix == "" || !filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, c.LoadPrefix) {
		return path
	}
	return c.resolveSymlink(path, filepath.Join(c.LoadPrefix, path))
}
