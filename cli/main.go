package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BertoldVdb/mlo-tools/mlo"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

type Context struct {
	out    io.Writer
	config mlo.Config
}

var CLI struct {
	LogLevel int  `optional help:"Higher values give more output."`
	NoColor  bool `optional help:"Disable colored output."`

	Inspect InspectCmd     `cmd help:"Parse a container and extract its payload."`
	Header  HeaderCmd      `cmd help:"Dump the start of a container."`
	Layouts ListLayoutsCmd `cmd help:"List known container layouts."`
}

func newLogFunc(w io.Writer, maxLevel int, noColor bool) mlo.LogFunc {
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))

	return func(level int, format string, param ...interface{}) {
		if level > maxLevel {
			return
		}

		slogLevel := slog.LevelInfo
		if level > 1 {
			slogLevel = slog.LevelDebug
		}
		logger.Log(context.Background(), slogLevel, fmt.Sprintf(format, param...), "level", level)
	}
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("mlo-tools"),
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("uint", intMapper{unsigned: true}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	if CLI.NoColor {
		color.NoColor = true
	}

	c := &Context{
		out: color.Output,
		config: mlo.Config{
			LogFunc: newLogFunc(os.Stderr, CLI.LogLevel, color.NoColor),
		},
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
