package main

import (
	"github.com/scott-cotton/cli"
)

type Config struct {
	InPlace            bool   `cli:"name=i aliases=in-place desc='overwrite the input file with the output'"`
	CollapseWhitespace bool   `cli:"name=collapse-whitespace desc='drop ignorable whitespace instead of encoding it'"`
	Numbers            bool   `cli:"name=numbers desc='encode numeric attribute values as int/long/float/double'"`
	HexPrefix          string `cli:"name=hex-prefix desc='value prefix marking hex byte payloads'"`
	B64Prefix          string `cli:"name=b64-prefix desc='value prefix marking base64 byte payloads'"`
	Policy             string `cli:"name=policy desc='YAML file with the attribute classification policy'"`
	Debug              bool   `cli:"name=debug desc='trace parse events to stderr'"`
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("xml2abx").
		WithSynopsis("xml2abx [opts] <input> [output]").
		WithDescription(description).
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

const description = `xml2abx converts XML documents to Android Binary XML (ABX).

The input and output arguments name files; '-' means stdin or stdout.
With -i, the input file is replaced by the converted output; the
replacement only happens after the whole conversion has succeeded.

By default only "true"/"false" attribute values and short repeated
strings get typed encodings; -numbers additionally encodes values that
round-trip as int, long, float, or double. -hex-prefix and -b64-prefix
mark attribute values carrying byte payloads. A YAML policy file
(-policy) can set the same knobs per invocation.`
