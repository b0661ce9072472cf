package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/jmars/go-implicit-pathtracer/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "renderer"
	app.Usage = "render a scene description to a PPM or BMP image"
	app.ArgsUsage = "<input_scene> <output_image>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "master seed for the sampling PRNG",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 1,
			Usage: "number of render workers; 1 is the deterministic reference mode",
		},
		cli.BoolFlag{
			Name:  "bmp",
			Usage: "write a 32-bpp BMP instead of a binary PPM",
		},
	}
	app.Action = cmd.RenderScene

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
