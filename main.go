package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Hexumicx/raytracing/cmd"
	"github.com/Hexumicx/raytracing/frame"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Usage: "name of a builtin scene; see list-scenes",
	}

	app := cli.NewApp()
	app.Name = "raytracing"
	app.Usage = "render sphere scenes using a parallel cpu ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render a scene loaded from a json or zip scene file (local path or http url) or
one of the builtin scenes. Camera flags override the scene camera settings.

The output format is selected by the file extension. Use "-" to write a plain
PPM image to standard output.`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "image aspect ratio (width / height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "max ray bounces",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "defocus",
					Usage: "defocus angle in degrees; 0 disables depth of field",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "distance to the plane of perfect focus",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of parallel workers; 0 uses all cpus",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed; 0 selects a time based seed",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1.0,
					Usage: "resize factor for raster image outputs",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: fmt.Sprintf("image file for the rendered frame (%s) or - for stdout", strings.Join(frame.Formats(), ", ")),
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scene-info",
			Usage:     "print scene information",
			ArgsUsage: "[scene_file]",
			Flags:     []cli.Flag{sceneFlag},
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the builtin scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "export",
			Usage: "write a scene to a json or zip scene file",
			Description: `
Serialize a scene so it can be edited and supplied as an argument to the render
command. The output format is selected by the file extension.`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				sceneFlag,
				cli.StringFlag{
					Name:  "out, o",
					Value: "scene.json",
					Usage: "scene file to write (.json or .zip)",
				},
			},
			Action: cmd.ExportScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
