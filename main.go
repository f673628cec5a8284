// Package main is the entry point for the lifo command-line application.
package main

import (
	"github.com/anisan-cli/lifo/cmd"
	"github.com/anisan-cli/lifo/config"
	"github.com/anisan-cli/lifo/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
