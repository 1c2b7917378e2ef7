package main

import (
	"fmt"

	"github.com/goopsie/pckFileTools/pkg/manifest"
	"github.com/urfave/cli/v2"
)

var cmdIndex = cli.Command{
	Name:      "index",
	Usage:     "Print an export index",
	ArgsUsage: "<" + manifest.FileName + ">",
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:  "verify",
			Usage: "check the indexed sections against `PCK`",
		},
	},
	Action: printIndex,
}

func printIndex(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	m, err := manifest.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	sections := m.Sections()

	w := c.App.Writer
	fmt.Fprintln(w, "==== Export Index ====")
	fmt.Fprintf(w, "file: %s\n", c.Args().First())
	fmt.Fprintf(w, "pack size: %d bytes (%s)\n", m.Header.FileSize, hx(int64(m.Header.FileSize)))
	fmt.Fprintf(w, "header_size=%d  entries=%d  source via %s\n", m.Header.HeaderSize, m.Header.EntryCount, m.SourceStrategy())
	fmt.Fprintln(w)
	printSections(w, sections, true, nameWidth)

	if path := c.Path("verify"); path != "" {
		data, err := readPack(path)
		if err != nil {
			return err
		}
		changed := m.Verify(data)
		fmt.Fprintf(w, "\nverify %s: %d/%d sections changed\n", path, len(changed), len(sections))
		for _, i := range changed {
			s := sections[i]
			fmt.Fprintf(w, "%3c  %-10s  %s\n", s.Symbol, hx(s.Start), shorten(s.Name, nameWidth))
		}
	}
	return nil
}
