package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// sizesCommand lists the known types and their maximum encoded sizes.
type sizesCommand struct {
	g *globals
}

func (cmd *sizesCommand) run(c *kingpin.ParseContext) error {
	w := cmd.g.stdout

	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-12s %s\n", "TYPE", "MAX SIZE")

	for _, name := range cmd.g.registry.Names() {
		codec, err := cmd.g.registry.Lookup(name)
		if err != nil {
			return err
		}

		size := "unsized"
		if codec.MaxSize >= 0 {
			size = humanize.IBytes(uint64(codec.MaxSize))
		}
		fmt.Fprintf(w, "%-12s %s\n", name, size)
	}
	return nil
}

func addSizesCommand(app *kingpin.Application, g *globals) {
	cmd := &sizesCommand{g: g}
	app.Command("sizes", "List known types and their maximum encoded sizes.").Action(cmd.run)
}
