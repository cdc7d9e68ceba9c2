package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/scene/builtin"
	"github.com/Hexumicx/raytracing/scene/reader"
	"github.com/Hexumicx/raytracing/scene/writer"
	"github.com/urfave/cli"
)

// The builtin scene used when no scene is specified.
const defaultScene = "final"

// Load the scene selected by the --scene flag or the scene file argument.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	name := ctx.String("scene")
	switch {
	case name != "" && ctx.NArg() != 0:
		return nil, errors.New("the --scene flag and a scene file argument are mutually exclusive")
	case ctx.NArg() > 1:
		return nil, errors.New("too many scene file arguments")
	case ctx.NArg() == 1:
		logger.Infof("loading scene from %s", ctx.Args().First())
		return reader.ReadScene(ctx.Args().First())
	case name == "":
		name = defaultScene
	}

	logger.Infof("loading builtin scene %q", name)
	return builtin.Load(name)
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	// Display scene info
	logger.Noticef("scene information:\n%s", sc.Stats())

	return nil
}

// List the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf strings.Builder
	buf.WriteString("builtin scenes:\n")
	for _, name := range builtin.Names() {
		buf.WriteString(fmt.Sprintf("  %s\n", name))
	}

	logger.Notice(buf.String())
	return nil
}

// Export a scene to a json or zip scene file.
func ExportScene(ctx *cli.Context) error {
	setupLogging(ctx)

	outFile := ctx.String("out")
	if outFile == "" {
		return errors.New("missing output file")
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("exporting scene %q to %s", sc.Name, outFile)
	return writer.WriteScene(sc, outFile)
}
