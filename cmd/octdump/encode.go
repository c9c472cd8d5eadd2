package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// encodeCommand prints the encoding of a value given in its text form.
type encodeCommand struct {
	g        *globals
	typeName *string
	value    *string
}

func (cmd *encodeCommand) run(c *kingpin.ParseContext) error {
	codec, err := cmd.g.registry.Lookup(*cmd.typeName)
	if err != nil {
		return err
	}

	data, err := codec.Encode(*cmd.value)
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", codec.Name, err)
	}

	cmd.g.logger.Debug().
		Str("type", codec.Name).
		Int("size", len(data)).
		Int("max_size", codec.MaxSize).
		Msg("encoded")

	_, err = fmt.Fprintln(cmd.g.stdout, cmd.g.cfg.FormatData(data))
	return err
}

func addEncodeCommand(app *kingpin.Application, g *globals) {
	cmd := &encodeCommand{g: g}
	encode := app.Command("encode", "Print the encoding of a value.").Action(cmd.run)
	cmd.typeName = encode.Arg("type", "Name of the value's type; see sizes.").Required().String()
	cmd.value = encode.Arg("value", "The value in text form.").Default("").String()
}
