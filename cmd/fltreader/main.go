package main

import (
	"os"

	"github.com/ddvk/fltreader/flt"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func parseFltFile(filename string, c *cli.Context) (err error) {
	var builder *flt.TreeBuilder
	var sink flt.Sink
	if c.Bool("flat") {
		sink = flt.NewLinePrinter(os.Stdout)
	} else {
		builder = flt.NewTreeBuilder()
		sink = builder
	}

	stats, err := flt.DecodeFile(filename, sink, flt.WithLenient(c.Bool("lenient")))
	if err != nil {
		return
	}
	log.Infof("parsed %s (%s): %s records, %d long ids, %d unknown skipped",
		filename, humanize.Bytes(uint64(stats.Bytes)), humanize.Comma(int64(stats.Records)), stats.LongIDs, stats.Skipped)
	if stats.Corrupt > 0 {
		log.Warnf("skipped %d corrupt records", stats.Corrupt)
	}

	if builder != nil {
		return flt.PrintTree(os.Stdout, builder.Tree())
	}
	return nil
}

func _main(c *cli.Context) error {
	if c.NArg() < 1 {
		log.Print("missing file")
		return cli.ShowAppHelp(c)
	}
	return parseFltFile(c.Args().First(), c)
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		ForceColors:     true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:      "fltreader",
		Usage:     "print the node hierarchy of an OpenFlight file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "flat",
				Usage: "print records while scanning instead of building the tree first",
			},
			&cli.BoolFlag{
				Name:    "lenient",
				EnvVars: []string{"FLT_LENIENT"},
				Usage:   "skip records with an undersized length instead of failing",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				EnvVars: []string{"FLT_LOG_LEVEL"},
				Usage:   "panic, fatal, error, warn, info, debug or trace",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Action: _main,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
