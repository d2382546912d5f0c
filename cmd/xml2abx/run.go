package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abx-format/go-abx/classify"
	"github.com/abx-format/go-abx/convert"
	"github.com/abx-format/go-abx/debug"
	"github.com/abx-format/go-abx/stream"

	"github.com/scott-cotton/cli"
)

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: input path required (use '-' for stdin)", cli.ErrUsage)
	}
	input := args[0]

	var output string
	switch {
	case cfg.InPlace:
		if input == "-" {
			return fmt.Errorf("%w: cannot overwrite stdin, output path is required", cli.ErrUsage)
		}
		if len(args) > 1 {
			return fmt.Errorf("%w: -i takes no output argument", cli.ErrUsage)
		}
		output = input
	case len(args) > 1:
		output = args[1]
	default:
		return fmt.Errorf("%w: output path required (use '-' for stdout)", cli.ErrUsage)
	}

	policy, err := cfg.policy()
	if err != nil {
		return err
	}
	opts := []convert.Option{
		convert.PreserveWhitespace(!cfg.CollapseWhitespace),
		convert.WithPolicy(policy),
		convert.WithWarningFunc(convert.Warnings(os.Stderr)),
	}
	if cfg.Debug {
		opts = append(opts, convert.WithTrace(func(ev *stream.Event) {
			debug.Logf("event %v\n", ev)
		}))
	}

	r, err := openInput(cc, input, cfg.InPlace)
	if err != nil {
		return err
	}
	defer r.Close()

	if output == "-" {
		w := bufio.NewWriter(cc.Out)
		if err := convert.Reader(r, w, opts...); err != nil {
			return err
		}
		return w.Flush()
	}
	return convertToFile(r, output, opts)
}

func (cfg *Config) policy() (*classify.Policy, error) {
	policy := classify.DefaultPolicy()
	if cfg.Policy != "" {
		p, err := classify.LoadPolicy(cfg.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	if cfg.Numbers {
		policy.Numbers = true
	}
	if cfg.HexPrefix != "" {
		policy.HexPrefix = cfg.HexPrefix
	}
	if cfg.B64Prefix != "" {
		policy.Base64Prefix = cfg.B64Prefix
	}
	return policy, nil
}

// openInput returns a reader over the input document. In-place mode
// reads the whole file up front so the conversion never races with the
// replacement of its own input.
func openInput(cc *cli.Context, input string, inPlace bool) (io.ReadCloser, error) {
	if input == "-" {
		return io.NopCloser(cc.In), nil
	}
	if inPlace {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// convertToFile writes the conversion to a temporary file next to the
// destination and renames it into place only after full success, so a
// failed conversion never leaves a destination that looks like valid
// ABX.
func convertToFile(r io.Reader, output string, opts []convert.Option) (err error) {
	dir := filepath.Dir(output)
	tmp, err := os.CreateTemp(dir, ".xml2abx-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = convert.Reader(r, w, opts...); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), output)
}
