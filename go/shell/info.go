package shell

import (
	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/loader"
)

var errNothingLoaded = errors.New("no binary loaded, use 'load <binary_path>' first")

// loadedElf returns the current load result, requiring it to be an ELF file.
func loadedElf(c *Context) (*loader.LoadResult, error) {
	if c.Result == nil {
		return nil, errNothingLoaded
	}
	if c.Result.Format != loader.FormatElf {
		return nil, errors.Errorf("%s is %s, not elf", c.Path, c.Result.Format)
	}
	return c.Result, nil
}

var HeaderCmd = cmd(&Command{
	Name:  "header",
	Usage: "header",
	Desc:  "Show the file header of the loaded binary.",
	Run: func(c *Context) error {
		if c.Result == nil {
			return errNothingLoaded
		}
		switch c.Result.Format {
		case loader.FormatPe:
			printPe(c, c.Result.Pe)
		case loader.FormatMachO:
			printMachO(c, c.Result.MachO)
		default:
			printElfHeader(c, c.Result.Elf)
		}
		return nil
	},
})

var SectionsCmd = cmd(&Command{
	Name:  "sections",
	Usage: "sections",
	Desc:  "List section headers of the loaded ELF file.",
	Run: func(c *Context) error {
		r, err := loadedElf(c)
		if err != nil {
			return err
		}
		printElfSections(c, c.Data, r)
		return nil
	},
})

var SegmentsCmd = cmd(&Command{
	Name:  "segments",
	Usage: "segments",
	Desc:  "List program headers of the loaded ELF file.",
	Run: func(c *Context) error {
		r, err := loadedElf(c)
		if err != nil {
			return err
		}
		printElfPrograms(c, r)
		return nil
	},
})
