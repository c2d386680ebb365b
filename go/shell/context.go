package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/mgutz/ansi"

	"github.com/sandlua/sandlua/go/loader"
	"github.com/sandlua/sandlua/go/models"
)

// Context is the state shared by commands in one shell session. The last
// successful load is kept so header/sections/segments can render it.
type Context struct {
	io.Writer
	Stderr io.Writer
	Config *models.Config

	Path   string
	Data   []byte
	Result *loader.LoadResult
}

func NewContext(config *models.Config, stdout, stderr io.Writer) *Context {
	if config == nil {
		config = models.NewConfig()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Context{Writer: stdout, Stderr: stderr, Config: config}
}

func (c *Context) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(c, format, a...)
}

// Logf writes progress to stderr in verbose mode only.
func (c *Context) Logf(format string, a ...interface{}) {
	if c.Config.Verbose {
		fmt.Fprintf(c.Stderr, format, a...)
	}
}

func (c *Context) Errorf(format string, a ...interface{}) {
	fmt.Fprintf(c.Stderr, c.Color("Error: ", "red+b")+format, a...)
}

func (c *Context) Warnf(format string, a ...interface{}) {
	fmt.Fprintf(c.Stderr, c.Color("Warning: ", "yellow+b")+format, a...)
}

// Color wraps s in an ansi style when color output is enabled.
func (c *Context) Color(s, style string) string {
	if !c.Config.Color {
		return s
	}
	return ansi.Color(s, style)
}
