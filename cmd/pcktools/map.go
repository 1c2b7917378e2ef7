package main

import (
	"fmt"

	"github.com/goopsie/pckFileTools/pkg/pck"
	"github.com/urfave/cli/v2"
)

var cmdMap = cli.Command{
	Name:      "map",
	Usage:     "Print the section map of a pack",
	ArgsUsage: "<pck>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "scan",
			Usage: "brute-force the source directory offset when other strategies fail",
		},
		&cli.BoolFlag{
			Name:  "no-decode",
			Usage: "map without decoding resources",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "truncate item names to `N` characters",
			Value: 120,
		},
		&cli.BoolFlag{
			Name:  "tiles",
			Usage: "print the non-overlapping tiling instead of every section",
		},
	},
	Action: mapFile,
}

func mapFile(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().First()

	data, err := readPack(path)
	if err != nil {
		return err
	}

	opts := []pck.MapOption{pck.WithNameWidth(c.Int("width"))}
	if c.Bool("no-decode") {
		opts = append(opts, pck.WithExtractor(nil))
	}
	m, err := mapPack(c, data, opts...)
	if err != nil {
		return err
	}

	sections := m.Sections
	if c.Bool("tiles") {
		sections = m.Tiles()
	}

	w := c.App.Writer
	printSummary(w, path, m)
	fmt.Fprintf(w, "decode: %t  scan: %t\n\n", !c.Bool("no-decode"), c.Bool("scan"))
	printLegend(w)
	fmt.Fprintln(w)
	printSections(w, sections, false, 0)
	return nil
}
