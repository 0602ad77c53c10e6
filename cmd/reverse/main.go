package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "reverse",
		Usage:     "Print a token list in reverse order",
		ErrWriter: os.Stderr,
		ArgsUsage: "[TOKEN...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "split",
				Aliases: []string{"s"},
				Value:   "fields",
				Usage:   "How to split token strings: 'fields' (any whitespace) or 'space'",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "text",
				Usage:   "Output format: 'text' or 'json'",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log processing steps to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.App.Reader, c.App.Writer, c.App.ErrWriter, options{
				Args:    c.Args().Slice(),
				Split:   c.String("split"),
				Output:  c.String("output"),
				Verbose: c.Bool("verbose"),
			})
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
