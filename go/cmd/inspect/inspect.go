package inspect

import (
	"os"

	"github.com/sandlua/sandlua/go/cmd"
	"github.com/sandlua/sandlua/go/shell"
)

func inspect(ctx *shell.Context, paths []string, segments bool) error {
	for _, path := range paths {
		if _, err := shell.Exec(ctx, "load "+shellQuote(path)); err != nil {
			return err
		}
		if segments && ctx.Result != nil && ctx.Result.Elf != nil {
			if _, err := shell.Exec(ctx, "segments"); err != nil {
				return err
			}
		}
	}
	return nil
}

func Main(args []string) {
	c := cmd.NewSandluaCmd()
	c.ArgsUsage = "<binary> [binary...]"
	c.NeedsArgs = true
	c.Example = "-segments /bin/ls"

	var segments *bool
	c.SetupFlags = func() error {
		segments = c.Flags.Bool("segments", false, "also list ELF program headers")
		return nil
	}
	c.RunSandlua = func(args []string) error {
		ctx := shell.NewContext(c.Config, c.Config.Output, os.Stderr)
		return inspect(ctx, args, *segments)
	}
	os.Exit(c.Run(args))
}

func init() { cmd.Register("inspect", "load binaries and print their headers", Main) }
