package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/models"
)

type strslice []string

func (s *strslice) String() string {
	return fmt.Sprintf("%v", *s)
}

func (s *strslice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type SandluaCmd struct {
	Config *models.Config
	// shell lines passed with -c
	Commands []string

	SetupFlags func() error
	RunSandlua func(args []string) error
	Teardown   func()
	ArgsUsage  string
	NeedsArgs  bool
	Example    string

	Flags  *flag.FlagSet
	Stderr io.Writer
}

func NewSandluaCmd() *SandluaCmd {
	fs := flag.NewFlagSet("cli", flag.ExitOnError)
	return &SandluaCmd{Flags: fs, Stderr: os.Stderr}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError reports err on Stderr. In verbose mode the innermost stack
// attached by pkg/errors follows, one frame per line.
func (c *SandluaCmd) PrintError(err error) {
	msg := fmt.Sprintf("Error: %s", err)
	if c.Config != nil && c.Config.Color {
		msg = ansi.Color(msg, "red+b")
	}
	fmt.Fprintln(c.Stderr, msg)
	if c.Config == nil || !c.Config.Verbose {
		return
	}
	var st stackTracer
	if errors.As(err, &st) {
		printStack(c.Stderr, st.StackTrace())
	}
}

func printStack(w io.Writer, stack errors.StackTrace) {
	var rows [][2]string
	width := 0
	for _, f := range stack {
		loc := fmt.Sprintf("%s:%d", f, f)
		fn := fmt.Sprintf("%n", f)
		rows = append(rows, [2]string{loc, fn})
		if len(loc) > width {
			width = len(loc)
		}
		if fn == "main" {
			break
		}
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-*s | %s()\n", width, row[0], row[1])
	}
}

// Run parses argv into a Config and hands the remaining arguments to
// RunSandlua. It returns the process exit code.
func (c *SandluaCmd) Run(argv []string) int {
	fs := c.Flags
	verbose := fs.Bool("v", false, "verbose output (load stages, error stack traces)")
	color := fs.Bool("color", isatty.IsTerminal(os.Stdout.Fd()), "colorize output")
	width := fs.Int("width", 16, "bytes per line in hex dumps")
	prefix := fs.String("prefix", "", "look up absolute paths under this directory first")
	history := fs.String("history", "", "shell history file (default: per-user cache dir)")
	prompt := fs.String("prompt", "> ", "shell prompt")
	outfile := fs.String("o", "", "redirect command output to file (default stdout)")
	var commands strslice
	fs.Var(&commands, "c", "run a shell command and exit (repeatable)")

	fs.Usage = func() {
		usage := "Usage: %s [options]"
		if c.ArgsUsage != "" {
			usage += " " + c.ArgsUsage
		}
		usage += "\n\nOptions:\n"
		fmt.Fprintf(c.Stderr, usage, argv[0])
		var flags []*flag.Flag
		fs.VisitAll(func(f *flag.Flag) {
			flags = append(flags, f)
		})
		models.PrintFlags(c.Stderr, flags)
		if c.Example != "" {
			fmt.Fprintf(c.Stderr, "\nExample:\n  %s %s\n", argv[0], c.Example)
		}
	}
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			panic(err)
		}
	}
	fs.Parse(argv[1:])

	args := fs.Args()
	if c.NeedsArgs && len(args) < 1 {
		fs.Usage()
		return 1
	}

	// build configuration
	absPrefix := ""
	if *prefix != "" {
		var err error
		absPrefix, err = filepath.Abs(*prefix)
		if err != nil {
			c.PrintError(errors.Wrap(err, "resolving -prefix"))
			return 1
		}
	}
	config := models.NewConfig()
	config.Color = *color
	config.Verbose = *verbose
	config.HexWidth = *width
	config.Prompt = *prompt
	config.LoadPrefix = absPrefix
	config.HistoryFile = *history
	c.Config = config
	c.Commands = commands

	if *outfile != "" {
		out, err := os.OpenFile(*outfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			c.PrintError(errors.Wrap(err, "opening -o file"))
			return 1
		}
		defer out.Close()
		config.Output = out
	}
	if c.Teardown != nil {
		defer c.Teardown()
	}
	if err := c.RunSandlua(args); err != nil {
		c.PrintError(err)
		return 1
	}
	return 0
}
