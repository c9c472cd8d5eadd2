package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
)

// decodeCommand prints the text form of an encoded value.
type decodeCommand struct {
	g        *globals
	typeName *string
	data     *string
}

func (cmd *decodeCommand) run(c *kingpin.ParseContext) error {
	codec, err := cmd.g.registry.Lookup(*cmd.typeName)
	if err != nil {
		return err
	}

	data, err := cmd.g.cfg.ParseData(*cmd.data)
	if err != nil {
		return fmt.Errorf("failed to parse %v data: %w", cmd.g.cfg.Format, err)
	}

	if limit := cmd.g.cfg.MaxDataBytes(); uint64(len(data)) > limit {
		return fmt.Errorf("data is %v, more than the limit of %v", humanize.IBytes(uint64(len(data))), humanize.IBytes(limit))
	}

	text, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %v: %w", codec.Name, err)
	}

	cmd.g.logger.Debug().
		Str("type", codec.Name).
		Int("size", len(data)).
		Msg("decoded")

	_, err = fmt.Fprintln(cmd.g.stdout, text)
	return err
}

func addDecodeCommand(app *kingpin.Application, g *globals) {
	cmd := &decodeCommand{g: g}
	decode := app.Command("decode", "Print the text form of an encoded value.").Action(cmd.run)
	cmd.typeName = decode.Arg("type", "Name of the value's type; see sizes.").Required().String()
	cmd.data = decode.Arg("data", "The encoding, in the configured format.").Default("").String()
}
