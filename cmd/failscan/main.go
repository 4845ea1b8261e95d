package main

import (
	"os"

	"github.com/livp123/failscan/cmd/failscan/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
