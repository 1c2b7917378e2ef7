package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goopsie/pckFileTools/pkg/extract"
	"github.com/goopsie/pckFileTools/pkg/manifest"
	"github.com/urfave/cli/v2"
)

var cmdExport = cli.Command{
	Name:      "export",
	Usage:     "Dump every mapped section to a timestamped directory",
	ArgsUsage: "<pck> <out_dir>",
	Description: "Output paths come from the section names; slashes create subfolders and\n" +
		"name conflicts overwrite. A sections.idx index is written next to the dump.",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "only dump sections whose path matches `GLOB`",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "skip sections whose path matches `GLOB`",
		},
		&cli.BoolFlag{
			Name:  "scan",
			Usage: "brute-force the source directory offset when other strategies fail",
		},
		&cli.BoolFlag{
			Name:  "no-index",
			Usage: "do not write " + manifest.FileName,
		},
	},
	Action: exportPack,
}

func exportPack(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	path, outDir := c.Args().Get(0), c.Args().Get(1)

	data, err := readPack(path)
	if err != nil {
		return err
	}
	m, err := mapPack(c, data)
	if err != nil {
		return err
	}

	root := extract.TimestampDir(outDir, time.Now())
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	dumped, err := extract.Dump(data, m.Sections, root,
		extract.WithInclude(c.StringSlice("include")...),
		extract.WithExclude(c.StringSlice("exclude")...),
	)
	if err != nil {
		return fmt.Errorf("dump sections: %w", err)
	}

	if !c.Bool("no-index") {
		if err := manifest.WriteFile(filepath.Join(root, manifest.FileName), manifest.FromMap(m, data)); err != nil {
			return fmt.Errorf("write index: %w", err)
		}
	}

	total := 0
	for _, s := range m.Sections {
		if s.End > s.Start {
			total++
		}
	}

	w := c.App.Writer
	printSummary(w, path, m)
	fmt.Fprintf(w, "dumped: %d/%d -> %s\n\n", dumped, total, root)
	printSections(w, m.Sections, true, nameWidth)
	return nil
}
