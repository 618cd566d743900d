// Package main implements minic, the mini compiler front end.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(args)
	if err == nil {
		return 0
	}
	if ec, ok := err.(cli.ExitCoder); ok {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintf(stderr, "minic: %v\n", err)
	return 1
}

func newApp(stdout, stderr io.Writer) *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "minic version %s\n", c.App.Version)
		fmt.Fprintf(c.App.Writer, "go version %s\n", runtime.Version())
	}

	return &cli.App{
		Name:      "minic",
		Usage:     "mini compiler front end",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are handled by run; the default handler would call os.Exit.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print per-phase timings to stderr",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "print stack traces with source for driver errors",
			},
			&cli.IntFlag{
				Name:  "max-errors",
				Usage: "stop reporting after `N` diagnostics (0 means no limit)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the token stream of a file",
				ArgsUsage: "FILE",
				Action:    tokensAction,
			},
			{
				Name:      "parse",
				Usage:     "print the syntax tree of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "output format: text, json or repr",
					},
				},
				Action: parseAction,
			},
			{
				Name:      "check",
				Usage:     "bind and type-check a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "types",
						Usage: "print the type of each statement",
					},
				},
				Action: checkAction,
			},
			{
				Name:      "emit",
				Usage:     "check a file and print the emitted source",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "type-args",
						Usage: "keep explicit type arguments on calls",
					},
				},
				Action: emitAction,
			},
			{
				Name:      "init",
				Usage:     "write a mini.yaml manifest",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: ".",
						Usage: "directory to write the manifest to",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing manifest",
					},
				},
				Action: initAction,
			},
			{
				Name:  "build",
				Usage: "check every source of a project and write the emitted files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "manifest",
						Value: "mini.yaml",
						Usage: "path to the project manifest",
					},
					&cli.BoolFlag{
						Name:  "type-args",
						Usage: "keep explicit type arguments on calls",
					},
				},
				Action: buildAction,
			},
		},
	}
}

// fail turns a driver error into an exit error. With --debug the error's
// stack trace is printed with source context first.
func fail(c *cli.Context, err error) error {
	if c.Bool("debug") {
		fmt.Fprintln(c.App.ErrWriter, tracerr.SprintSourceColor(err))
	}
	return cli.Exit("minic: "+err.Error(), 1)
}
