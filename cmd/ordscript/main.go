package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

//nolint:all
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// loaded before any command runs
var cfg *Config

func main() {
	app := cli.NewApp()
	app.Name = "ordscript"
	app.Usage = "Build bitcoin output scripts and ordinals inscriptions"
	app.Version = version + " (" + commit + ", " + date + ")"
	app.Commands = append(
		app.Commands,
		p2pkhCmd,
		p2wpkhCmd,
		p2trCmd,
		brc20Cmd,
		nftCmd,
		inspectCmd,
		addressCmd,
	)
	app.Before = func(*cli.Context) error {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			return err
		}
		log.SetLevel(log.Level(cfg.LogLevel))
		log.Debugf("config: %s", cfg)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("ordscript failed")
	}
}
