package cmd

import (
	"github.com/urfave/cli"

	"github.com/jmars/go-implicit-pathtracer/log"
)

var logger = log.New("renderer")

// setupLogging raises verbosity from the global -v / -vv flags
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	default:
		log.SetLevel(log.Warning)
	}
}
