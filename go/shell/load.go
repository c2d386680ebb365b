package shell

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/loader"
)

// readFile checks that path names a regular file before reading it.
func readFile(c *Context, path string) ([]byte, error) {
	path = c.Config.PrefixPath(path)
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.Errorf("File not found: %s", path)
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	if !stat.Mode().IsRegular() {
		return nil, errors.Errorf("Path is not a file: %s", path)
	}
	p, err := ioutil.ReadFile(path)
	if os.IsPermission(err) {
		return nil, errors.Errorf("Permission denied: %s", path)
	}
	return p, errors.Wrapf(err, "reading %s", path)
}

// loadError shows the user-facing message but keeps the loader's error,
// and its stack, reachable through Unwrap.
type loadError struct {
	msg string
	err error
}

func (e *loadError) Error() string { return e.msg }
func (e *loadError) Cause() error  { return e.err }
func (e *loadError) Unwrap() error { return e.err }

var LoadCmd = cmd(&Command{
	Name:    "load",
	Usage:   "load <binary_path>",
	Desc:    "Load and identify binary file.",
	MinArgs: 1,
	Run: func(c *Context, path string) error {
		data, err := readFile(c, path)
		if err != nil {
			return err
		}
		format := loader.Classify(data)
		c.Logf("%s: detected format %s (%d bytes)\n", path, format, len(data))
		result, err := loader.Load(data)
		if err != nil {
			c.Printf("Failed to load: %s\n", path)
			return &loadError{msg: describe(err), err: err}
		}
		c.Path, c.Data, c.Result = path, data, result
		switch result.Format {
		case loader.FormatElf:
			c.Logf("decoded %d section headers, %d program headers\n", len(result.Sections), len(result.Programs))
			printElfHeader(c, result.Elf)
			printElfSections(c, data, result)
		case loader.FormatPe:
			printPe(c, result.Pe)
		case loader.FormatMachO:
			printMachO(c, result.MachO)
		}
		c.Printf("Successfully loaded: %s as %s\n", path, result.Format)
		return nil
	},
})
