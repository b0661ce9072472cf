package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/jmars/go-implicit-pathtracer/pkg/imageio"
	"github.com/jmars/go-implicit-pathtracer/pkg/loaders"
	"github.com/jmars/go-implicit-pathtracer/pkg/renderer"
)

// RenderScene loads the input scene, renders one frame and writes the image.
// Usage: renderer <input_scene> <output_image>
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		return cli.NewExitError("usage: renderer <input_scene> <output_image>", 1)
	}
	inputPath := ctx.Args().Get(0)
	outputPath := ctx.Args().Get(1)

	sc, err := loaders.LoadScene(inputPath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return cli.NewExitError(fmt.Sprintf("scene %s has no valid DIMENSIONS", inputPath), 1)
	}

	if ctx.IsSet("seed") {
		sc.SetSeed(ctx.Uint64("seed"))
	}

	logger.Infof("rendering %dx%d, %d samples, depth %d, %d primitives (%d lights)",
		sc.Width, sc.Height, sc.Samples, sc.RayDepth, len(sc.Primitives), sc.NumLights)

	fb, stats := renderer.New(sc).RenderParallel(ctx.Int("workers"))

	useBMP := ctx.Bool("bmp") || strings.HasSuffix(strings.ToLower(outputPath), ".bmp")
	if useBMP {
		err = imageio.SaveBMP(outputPath, fb)
	} else {
		err = imageio.SavePPM(outputPath, fb)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Infof("wrote %s in %s", outputPath, stats.RenderTime)
	if ctx.GlobalBool("v") || ctx.GlobalBool("vv") {
		displayRenderStats(stats)
	}

	return nil
}

// displayRenderStats prints a per-band summary table of the finished frame
func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Band", "Rows", "Pixels", "Primary rays", "Render time"})
	for _, band := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", band.Band),
			fmt.Sprintf("%d-%d", band.RowStart, band.RowEnd),
			fmt.Sprintf("%d", band.Pixels),
			fmt.Sprintf("%d", band.PrimaryRays),
			band.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.PrimaryRays), stats.RenderTime.String()})
	table.Render()

	logger.Infof("frame statistics\n%s", buf.String())
}
