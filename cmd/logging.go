package cmd

import (
	"github.com/Hexumicx/raytracing/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracing")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
