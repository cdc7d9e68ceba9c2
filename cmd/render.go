package cmd

import (
	"github.com/Hexumicx/raytracing/frame"
	"github.com/Hexumicx/raytracing/renderer"
	"github.com/Hexumicx/raytracing/scene"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	applyCameraFlags(ctx, sc.Camera)

	opts := renderer.Options{
		Workers: ctx.Int("workers"),
		Seed:    uint64(ctx.Int64("seed")),
	}

	logger.Noticef("rendering scene %q", sc.Name)
	fb, stats, err := renderer.Render(sc, opts)
	if err != nil {
		return err
	}

	// Display stats
	logger.Noticef("frame statistics\n%s", stats.Table())

	outFile := ctx.String("out")
	if err = frame.Save(outFile, fb, ctx.Float64("scale")); err != nil {
		return err
	}
	if outFile != frame.StdoutPath {
		logger.Noticef("wrote frame to %s", outFile)
	}

	return nil
}

// Override camera settings with any explicitly set command line flag.
func applyCameraFlags(ctx *cli.Context, cam *scene.Camera) {
	if cam == nil {
		return
	}
	if ctx.IsSet("width") {
		cam.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("aspect") {
		cam.AspectRatio = ctx.Float64("aspect")
	}
	if ctx.IsSet("spp") {
		cam.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cam.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("vfov") {
		cam.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("defocus") {
		cam.DefocusAngle = ctx.Float64("defocus")
	}
	if ctx.IsSet("focus") {
		cam.FocusDist = ctx.Float64("focus")
	}
}
