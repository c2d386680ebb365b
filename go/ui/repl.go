package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"

	"github.com/sandlua/sandlua/go/models"
	"github.com/sandlua/sandlua/go/shell"
)

const (
	welcome = "sandlua shell. Type 'help' for a list of commands."
	goodbye = "Exiting shell."
)

type Repl struct {
	rl  *readline.Instance
	ctx *shell.Context
}

// historyPath returns the configured history file, or one in the per-user
// cache folder. An empty result disables history.
func historyPath(config *models.Config) string {
	if config.HistoryFile != "" {
		return config.HistoryFile
	}
	configDirs := configdir.New("sandlua", "shell")
	cacheDir := configDirs.QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for name := range shell.Commands {
		items = append(items, readline.PcItem(name))
	}
	items = append(items, readline.PcItem("quit"), readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}

func NewRepl(config *models.Config) (*Repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.Prompt,
		HistoryFile:     historyPath(config),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	var out io.Writer = rl.Stdout()
	if config.Output != nil {
		out = config.Output
	}
	ctx := shell.NewContext(config, out, rl.Stderr())
	return &Repl{rl: rl, ctx: ctx}, nil
}

// Run reads commands until exit, EOF or interrupt.
func (r *Repl) Run() {
	defer r.Close()
	fmt.Fprintln(r.ctx, welcome)
	for {
		line, err := r.rl.Readline()
		if err != nil {
			// readline.ErrInterrupt and io.EOF both end the session
			break
		}
		if !shell.Run(r.ctx, line) {
			break
		}
	}
	fmt.Fprintln(r.ctx, goodbye)
}

func (r *Repl) Close() {
	r.rl.Close()
}
