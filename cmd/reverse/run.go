package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/baditaflorin/go_list_reverse/internal/adapters/logger"
	"github.com/baditaflorin/go_list_reverse/internal/ports"
	listreverse "github.com/baditaflorin/go_list_reverse/pkg"
	"github.com/pkg/errors"
)

type options struct {
	// Args are joined into one token string; empty means read stdin.
	Args    []string
	Split   string
	Output  string
	Verbose bool
}

// run reverses the input and writes the result to out. Verbose logs go to errOut.
func run(in io.Reader, out, errOut io.Writer, opts options) error {
	if opts.Output != "text" && opts.Output != "json" {
		return errors.Errorf("invalid output format %q (want 'text' or 'json')", opts.Output)
	}

	splitType, err := listreverse.ParseNormalizerType(opts.Split)
	if err != nil {
		return err
	}

	input, err := loadInput(in, opts.Args)
	if err != nil {
		return err
	}

	reverserOpts := []listreverse.Option{listreverse.WithNormalizerType(splitType)}
	if opts.Verbose {
		verboseLogger, err := newVerboseLogger(errOut)
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
		reverserOpts = append(reverserOpts, listreverse.WithPortsLogger(verboseLogger))
	} else {
		reverserOpts = append(reverserOpts, listreverse.WithSilentLogger())
	}
	r, err := listreverse.New(reverserOpts...)
	if err != nil {
		return errors.Wrap(err, "creating reverser")
	}
	defer r.Close()

	result, err := r.Reverse(input)
	if err != nil {
		return err
	}

	return writeResult(out, result, opts.Output)
}

// newVerboseLogger logs every processing step, including debug messages.
func newVerboseLogger(w io.Writer) (ports.Logger, error) {
	cfg := logger.DefaultConfig()
	cfg.Output = w
	cfg.Level = slog.LevelDebug
	return logger.NewCustomStdLogger(cfg)
}

func loadInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(data), nil
}

func writeResult(out io.Writer, result []any, format string) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		return enc.Encode(result)
	}

	tokens := make([]string, len(result))
	for i, v := range result {
		tokens[i] = fmt.Sprint(v)
	}
	_, err := fmt.Fprintln(out, strings.Join(tokens, " "))
	return err
}
