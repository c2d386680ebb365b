package repl

import (
	"os"

	"github.com/sandlua/sandlua/go/cmd"
	"github.com/sandlua/sandlua/go/shell"
	"github.com/sandlua/sandlua/go/ui"
)

// runBatch executes -c lines in order, stopping at the first error or exit.
func runBatch(ctx *shell.Context, lines []string) error {
	for _, line := range lines {
		if cont, err := shell.Exec(ctx, line); err != nil {
			return err
		} else if !cont {
			break
		}
	}
	return nil
}

func Main(args []string) {
	c := cmd.NewSandluaCmd()
	c.Example = `-c "load /bin/ls" -c sections`
	c.RunSandlua = func(args []string) error {
		if len(c.Commands) > 0 {
			ctx := shell.NewContext(c.Config, c.Config.Output, os.Stderr)
			return runBatch(ctx, c.Commands)
		}
		repl, err := ui.NewRepl(c.Config)
		if err != nil {
			return err
		}
		repl.Run()
		return nil
	}
	os.Exit(c.Run(args))
}

func init() { cmd.Register("shell", "interactive binary inspection shell", Main) }
