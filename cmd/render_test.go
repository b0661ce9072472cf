package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli"
)

const testScene = `DIMENSIONS 4 4
BG_COLOR 0 0 0
CAMERA_POSITION 0 0 0
CAMERA_RIGHT 1 0 0
CAMERA_UP 0 1 0
CAMERA_FORWARD 0 0 1
CAMERA_FOV_X 1
SAMPLES 1
RAY_DEPTH 1
`

func testApp() *cli.App {
	app := cli.NewApp()
	app.Name = "renderer"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
		cli.Uint64Flag{Name: "seed"},
		cli.IntFlag{Name: "workers", Value: 1},
		cli.BoolFlag{Name: "bmp"},
	}
	app.Action = RenderScene
	app.Writer = os.Stderr
	// Keep ExitErrors as plain errors instead of terminating the test binary
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func TestRenderSceneWritesPPM(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.txt")
	output := filepath.Join(dir, "out.ppm")
	if err := os.WriteFile(input, []byte(testScene), 0644); err != nil {
		t.Fatal(err)
	}

	if err := testApp().Run([]string{"renderer", input, output}); err != nil {
		t.Fatalf("render run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	wantHeader := []byte("P6\n4 4\n255\n")
	if !bytes.HasPrefix(data, wantHeader) {
		t.Fatalf("output header = %q", data[:min(len(data), 16)])
	}
	if len(data) != len(wantHeader)+3*4*4 {
		t.Errorf("output length = %d", len(data))
	}
	// Black frame: every payload byte is zero
	for i, b := range data[len(wantHeader):] {
		if b != 0 {
			t.Fatalf("payload byte %d = %d, want 0", i, b)
		}
	}
}

func TestRenderSceneWritesBMPByExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.txt")
	output := filepath.Join(dir, "out.bmp")
	if err := os.WriteFile(input, []byte(testScene), 0644); err != nil {
		t.Fatal(err)
	}

	if err := testApp().Run([]string{"renderer", input, output}); err != nil {
		t.Fatalf("render run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) < 54 || data[0] != 'B' || data[1] != 'M' {
		t.Fatal("output is not a BMP")
	}
	if len(data) != 54+4*4*4 {
		t.Errorf("BMP length = %d", len(data))
	}
}

func TestRenderSceneUsageErrors(t *testing.T) {
	if err := testApp().Run([]string{"renderer", "only-one-arg"}); err == nil {
		t.Error("missing output argument should fail")
	}

	dir := t.TempDir()
	if err := testApp().Run([]string{"renderer", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.ppm")}); err == nil {
		t.Error("unreadable input should fail")
	}
}

func TestRenderSceneDeterministicOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.txt")
	if err := os.WriteFile(input, []byte(testScene+`NEW_PRIMITIVE
ELLIPSOID 1 1 1
POSITION 0 0 3
COLOR 0.8 0.1 0.1
EMISSION 0.5 0.5 0.5
`), 0644); err != nil {
		t.Fatal(err)
	}

	outA := filepath.Join(dir, "a.ppm")
	outB := filepath.Join(dir, "b.ppm")
	if err := testApp().Run([]string{"renderer", "--seed", "77", input, outA}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := testApp().Run([]string{"renderer", "--seed", "77", input, outB}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, _ := os.ReadFile(outA)
	b, _ := os.ReadFile(outB)
	if !bytes.Equal(a, b) {
		t.Error("identical runs produced different bytes")
	}
}
