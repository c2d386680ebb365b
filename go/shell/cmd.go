package shell

import (
	"fmt"
	"reflect"

	"github.com/lunixbochs/argjoy"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

type Command struct {
	Name  string
	Usage string
	Desc  string
	// minimum number of arguments; Usage is printed when fewer are given
	MinArgs int
	Run     interface{}
}

var Commands = make(map[string]*Command)

func cmd(c *Command) *Command {
	fn := reflect.ValueOf(c.Run)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("Command.Run must be a func: got (%T) %#v\n", c.Run, c.Run))
	}
	Commands[c.Name] = c
	return c
}

var aj = argjoy.NewArgjoy()

func IsExit(name string) bool {
	return name == "quit" || name == "exit"
}

// Exec parses and executes one shell line, returning the command's error.
// cont is false when the line asks the shell to exit.
func Exec(c *Context, line string) (cont bool, err error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return true, errors.Wrap(err, "parse error")
	}
	if len(args) == 0 {
		return true, nil
	}
	name, args := args[0], args[1:]
	if IsExit(name) {
		return false, nil
	}
	cmd, ok := Commands[name]
	if !ok {
		c.Printf("Unknown command: %s. Type 'help' for a list of commands.\n", name)
		return true, nil
	}
	if len(args) < cmd.MinArgs {
		c.Printf("Usage: %s\n", cmd.Usage)
		return true, nil
	}
	vals := []interface{}{c}
	for _, arg := range args {
		vals = append(vals, arg)
	}
	out, err := aj.Call(cmd.Run, vals...)
	if err != nil {
		return true, errors.Wrapf(err, "executing command '%s'", name)
	}
	if len(out) > 0 {
		if err, ok := out[0].(error); ok && err != nil {
			return true, err
		}
	}
	return true, nil
}

// Run is Exec for interactive use: errors are printed, not returned.
func Run(c *Context, line string) bool {
	cont, err := Exec(c, line)
	if err != nil {
		c.Errorf("%v\n", err)
	}
	return cont
}
