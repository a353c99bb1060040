// Command detective plays Detective Quest on the terminal.
package main

import (
	"detective_quest/cli"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
