package shell

import (
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	return names
}

var HelpCmd = cmd(&Command{
	Name:  "help",
	Usage: "help",
	Desc:  "Show this help message.",
	Run: func(c *Context) error {
		c.Printf("Available commands:\n")
		for _, name := range commandNames() {
			cmd := Commands[name]
			c.Printf("  %-28s - %s\n", cmd.Usage, cmd.Desc)
		}
		c.Printf("  %-28s - %s\n", "quit / exit", "Exit the shell.")
		return nil
	},
})
