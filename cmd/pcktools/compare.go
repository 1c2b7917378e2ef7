package main

import (
	"fmt"

	"github.com/goopsie/pckFileTools/pkg/compare"
	"github.com/urfave/cli/v2"
)

var cmdCompare = cli.Command{
	Name:      "compare",
	Aliases:   []string{"c"},
	Usage:     "Compare two packs section by section",
	ArgsUsage: "<pck1> <pck2>",
	Description: "Sections are grouped by symbol and name. Differing rows are listed first,\n" +
		"then identical ones, each by start address.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "scan",
			Usage: "brute-force the source directory offset when other strategies fail",
		},
	},
	Action: comparePacks,
}

func comparePacks(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	p1, p2 := c.Args().Get(0), c.Args().Get(1)

	var inputs [2]compare.Input
	for i, path := range []string{p1, p2} {
		data, err := readPack(path)
		if err != nil {
			return err
		}
		m, err := mapPack(c, data)
		if err != nil {
			return err
		}
		inputs[i] = compare.Input{Data: data, Sections: m.Sections}
	}

	rows := compare.Compare(inputs[0], inputs[1])

	w := c.App.Writer
	fmt.Fprintln(w, "==== PCK Compare ====")
	fmt.Fprintf(w, "pck1: %s  size=%d (%s)\n", p1, len(inputs[0].Data), hx(int64(len(inputs[0].Data))))
	fmt.Fprintf(w, "pck2: %s  size=%d (%s)\n", p2, len(inputs[1].Data), hx(int64(len(inputs[1].Data))))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SYM  START1      START2      SIZE1       SIZE2       SAME   NAME")
	fmt.Fprintln(w, "---- ----------  ----------  ----------  ----------  -----  ----")
	for _, r := range rows {
		fmt.Fprintf(w, "%3c  %-10s  %-10s  %10d  %10d  %-5t  %s\n",
			r.Symbol, start(r.StartA), start(r.StartB), r.SizeA, r.SizeB, r.Same, shorten(r.Name, nameWidth))
	}

	same, different := compare.Summary(rows)
	fmt.Fprintf(w, "\nsame: %d  different: %d\n", same, different)
	return nil
}

func start(ofs int64) string {
	if ofs < 0 {
		return "-"
	}
	return hx(ofs)
}
