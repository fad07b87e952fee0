package main

import (
	"io"
	"os"

	"github.com/mgnsk/kvring"
	"github.com/mgnsk/kvring/internal/config"
	"github.com/mgnsk/kvring/internal/script"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "kvring",
		Usage: "run operation scripts against a key-value ring",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "apply a YAML or TOML script and print the resulting ring",
				ArgsUsage: "SCRIPT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "script format (yaml or toml), derived from the file extension when empty",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "abort on the first failed ring operation",
						Value: cfg.Strict,
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "diagnostics log level",
						Value: cfg.LogLevel,
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one SCRIPT argument", 2)
					}

					runCfg := *cfg
					runCfg.Strict = c.Bool("strict")
					runCfg.LogLevel = c.String("log-level")

					return run(&runCfg, c.Args().First(), c.String("format"), c.App.Writer, c.App.ErrWriter)
				},
			},
		},
	}
}

func run(cfg *config.Config, path, format string, out, errOut io.Writer) error {
	logger, err := cfg.Logger(errOut)
	if err != nil {
		return err
	}

	s, err := script.Load(path, format)
	if err != nil {
		return err
	}

	ring := kvring.New[string, string](kvring.WithLogger(logger))

	runner := &script.Runner{
		Ring:   ring,
		Out:    out,
		Log:    logger,
		Strict: cfg.Strict,
	}

	if err := runner.Run(s); err != nil {
		return err
	}

	logger.WithField("len", ring.Len()).Info("script finished")

	return ring.Fprint(out)
}
