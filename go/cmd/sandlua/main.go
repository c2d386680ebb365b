package main

import (
	"github.com/sandlua/sandlua/go/cmd"

	_ "github.com/sandlua/sandlua/go/cmd/inspect"
	_ "github.com/sandlua/sandlua/go/cmd/repl"
)

func main() { cmd.Main() }
