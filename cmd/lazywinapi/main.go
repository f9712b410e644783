//go:build windows

package main

import (
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	hlog "github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
)

const desc = `A stand-alone tool over the Win32 clipboard, system error messages and
process memory. Every command maps onto one or two Win32 calls.`

const (
	logLevelFlag = "log-level"
	configFlag   = "config"
)

// conf is loaded before any command runs.
var conf = defaultConfig()

func main() {
	app := &cli.App{
		Name:        "lazywinapi",
		Usage:       "tool for the Windows clipboard, error codes and process memory",
		Description: desc,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "logging `level` (trace, debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  configFlag,
				Usage: "TOML config `file`; defaults to " + defaultConfigName + " next to the executable",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			clipboardCommand,
			errorCommand,
			processCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(ctx *cli.Context) error {
	c, err := loadConfig(ctx.String(configFlag))
	if err != nil {
		return err
	}
	if ctx.IsSet(logLevelFlag) {
		c.LogLevel = ctx.String(logLevelFlag)
	}
	conf = c

	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: log.RFC3339NanoFixed,
		FullTimestamp:   true,
	})
	logrus.SetOutput(os.Stderr)
	logrus.AddHook(hlog.NewHook())
	if err := hlog.SetLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	ctx.Context = hlog.WithLogger(ctx.Context, hlog.L.WithField(logfields.Operation, ctx.Args().First()))
	hlog.G(ctx.Context).WithField(logfields.Config, hlog.Format(ctx.Context, c)).Debug("loaded config")
	return nil
}
