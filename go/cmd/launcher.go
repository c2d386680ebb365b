package cmd

import (
	"fmt"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string)
}

var commands map[string]*command
var order []string
var pad int

// DefaultCommand runs when no command name is given.
var DefaultCommand = "shell"

func init() { commands = make(map[string]*command) }

func Register(name, desc string, main func(args []string)) {
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func Main() {
	usage := func() {
		fmt.Fprintln(os.Stderr, "Commands:")
		fstr := fmt.Sprintf("%%-%ds | %%s\n", pad)
		for _, name := range order {
			cmd := commands[name]
			fmt.Fprintf(os.Stderr, fstr, cmd.name, cmd.desc)
		}
		fmt.Fprintf(os.Stderr, "\nExample: %s inspect /bin/ls\n\n", os.Args[0])
	}
	argv := os.Args
	// bare invocation or leading flags go to the default command
	if len(argv) < 2 || strings.HasPrefix(argv[1], "-") {
		argv = append([]string{argv[0], DefaultCommand}, argv[1:]...)
	}
	if argv[1] == "help" {
		usage()
		return
	}
	cmd, ok := commands[argv[1]]
	if ok {
		args := append([]string{strings.Join(argv[:2], " ")}, argv[2:]...)
		cmd.main(args)
	} else {
		fmt.Fprintf(os.Stderr, "Command '%s' not found.\n\n", argv[1])
		usage()
		os.Exit(1)
	}
}
