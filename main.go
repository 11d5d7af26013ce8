package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/cadet/config"
)

var outputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "mode",
		Usage: "entry point: expression, type or argument",
	},
	&cli.StringFlag{
		Name:  "format",
		Usage: "output format: canonical or repr",
	},
}

// loadSettings merges the settings file with command line flags and applies
// the resulting log level.
func loadSettings(c *cli.Context) (config.Settings, error) {
	path := c.String("config")
	if path == "" {
		path = config.Find(".")
	}

	s := config.Default()
	if path != "" {
		var err error
		s, err = config.Load(path)
		if err != nil {
			return s, err
		}
	}

	if c.IsSet("mode") {
		s.Mode = c.String("mode")
	}
	if c.IsSet("format") {
		s.Format = c.String("format")
	}
	if c.Bool("verbose") {
		s.LogLevel = "DEBUG"
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	level, _ := capnslog.ParseLevel(strings.ToUpper(s.LogLevel))
	capnslog.SetGlobalLogLevel(level)
	plog.Debugf("settings %+v (file %q)", s, path)

	return s, nil
}

func main() {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))

	app := &cli.App{
		Name:  "cadet",
		Usage: "contract language expression front end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file (default: cadet.yaml, cadet.yml or cadet.toml in the working directory)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			if c.Bool("verbose") {
				tracerr.PrintSourceColor(err)
			} else {
				plog.Error(message(err))
			}
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default settings file",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						name = config.Names[0]
					}
					if _, err := os.Stat(name); err == nil {
						return tracerr.Errorf("%s already exists", name)
					}
					return config.Save(name, config.Default())
				},
			},
			{
				Name:  "tokens",
				Usage: "print the token stream of a file",
				Action: func(c *cli.Context) error {
					if _, err := loadSettings(c); err != nil {
						return err
					}
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					writeTokens(os.Stdout, src)
					return nil
				},
			},
			{
				Name:  "parse",
				Usage: "parse a file as a single entry and print its tree",
				Flags: outputFlags,
				Action: func(c *cli.Context) error {
					s, err := loadSettings(c)
					if err != nil {
						return err
					}
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					n, err := parseSource(s.Mode, src)
					if err != nil {
						return err
					}
					fmt.Println(render(n, s.Format))
					return nil
				},
			},
			{
				Name:  "check",
				Usage: "parse every line of a file independently",
				Flags: outputFlags,
				Action: func(c *cli.Context) error {
					s, err := loadSettings(c)
					if err != nil {
						return err
					}
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					results := checkLines(s.Mode, src)
					if failed := writeResults(os.Stdout, results, s.Format); failed > 0 {
						return tracerr.Errorf("%d of %d lines failed", failed, len(results))
					}
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "parse lines interactively",
				Flags: outputFlags,
				Action: func(c *cli.Context) error {
					s, err := loadSettings(c)
					if err != nil {
						return err
					}
					return runRepl(s, os.Stdout)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
