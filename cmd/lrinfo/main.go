// Copyright 2026 The Lightrender Authors. All rights reserved.

// Command lrinfo inspects the compiled-in render backends.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"lightrender/lr/log"
	"lightrender/lr/render"

	_ "lightrender/lr/render/gl"
	_ "lightrender/lr/render/gles"
	_ "lightrender/lr/render/null"
	_ "lightrender/lr/render/vk"
)

var logger = log.New("lrinfo")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lrinfo"
	app.Usage = "inspect render backends"
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
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML config file for context creation",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:   "backends",
			Usage:  "list compiled-in backend drivers",
			Action: listBackends,
		},
		{
			Name:  "probe",
			Usage: "open a backend and report its limits",
			Description: `
Open a context on the selected backend (headless), print the
implementation limits it reports and shut it down. The backend,
surface size and debug flag come from the config file; without one
the first available backend is probed at 640x480.`,
			ArgsUsage: "[backend]",
			Action:    probe,
		},
	}

	app.Run(os.Args)
}

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

func listBackends(ctx *cli.Context) error {
	var buf bytes.Buffer
	drivers := render.Drivers()
	fmt.Fprintf(&buf, "\n%d backend driver(s) compiled in:\n\n", len(drivers))
	for i, drv := range drivers {
		fmt.Fprintf(&buf, "[Driver %02d]\n  Name    %s\n  Backend %s\n\n",
			i, drv.Name(), drv.Backend())
	}
	logger.Notice(buf.String())
	return nil
}

func probe(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	if name := ctx.Args().First(); name != "" {
		cfg.Backend, err = parseBackend(name)
		if err != nil {
			return err
		}
	}

	c, err := render.New(cfg)
	if err != nil {
		return err
	}
	defer c.Shutdown()

	lim := c.Limits()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\nOpened %s (%dx%d)\n\n", c.Backend(), c.Width(), c.Height())
	fmt.Fprintf(&buf, "  MaxTextureSize     %d\n", lim.MaxTextureSize)
	fmt.Fprintf(&buf, "  MaxTextureLayers   %d\n", lim.MaxTextureLayers)
	fmt.Fprintf(&buf, "  MaxTextureUnits    %d\n", lim.MaxTextureUnits)
	fmt.Fprintf(&buf, "  MaxColorTargets    %d\n", lim.MaxColorTargets)
	fmt.Fprintf(&buf, "  MaxUniformBindings %d\n", lim.MaxUniformBindings)
	fmt.Fprintf(&buf, "  MaxSamples         %d\n", lim.MaxSamples)
	fmt.Fprintf(&buf, "  MaxVertexAttrs     %d\n", lim.MaxVertexAttrs)
	logger.Notice(buf.String())
	return nil
}
