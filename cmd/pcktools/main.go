// Package main provides a command-line tool for mapping, exporting and
// comparing scene pack files.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/goopsie/pckFileTools/pkg/lzss"
	"github.com/goopsie/pckFileTools/pkg/pck"
	"github.com/goopsie/pckFileTools/pkg/resource"
	"github.com/urfave/cli/v2"
)

// Exit statuses.
const (
	exitTooSmall = 1
	exitNotFound = 2
)

func main() {
	app := &cli.App{
		Name:  "pcktools",
		Usage: "PCK section mapper, raw dumper and section comparer",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.IntFlag{
				Name:    "max-decompress",
				Usage:   "largest decompressed resource in bytes",
				Value:   lzss.DefaultMaxSize,
				EnvVars: []string{"PCKTOOLS_MAX_DECOMPRESS"},
			},
		},
		Before: setupLogging,
	}

	app.Commands = []*cli.Command{
		&cmdExport,
		&cmdCompare,
		&cmdMap,
		&cmdIndex,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// readPack loads a whole pack, mapping a missing or undersized file to the
// matching exit status.
func readPack(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.Exit(fmt.Sprintf("not found: %s", path), exitNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	if len(data) < pck.MinHeaderSize {
		return nil, cli.Exit(fmt.Sprintf("too small: %s (%d bytes)", path, len(data)), exitTooSmall)
	}
	return data, nil
}

// mapPack maps data with the decoder and scan settings of c.
func mapPack(c *cli.Context, data []byte, opts ...pck.MapOption) (*pck.Map, error) {
	base := []pck.MapOption{
		pck.WithExtractor(&resource.Decoder{MaxSize: c.Int("max-decompress")}),
		pck.WithScan(c.Bool("scan")),
	}
	m, err := pck.Build(data, append(base, opts...)...)
	if errors.Is(err, pck.ErrTooSmall) {
		return nil, cli.Exit(err.Error(), exitTooSmall)
	}
	return m, err
}

// requireArgs checks the positional argument count.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		_ = cli.ShowSubcommandHelp(c)
		return cli.Exit(fmt.Sprintf("%s: expected %d arguments, got %d", c.Command.Name, n, c.NArg()), exitNotFound)
	}
	return nil
}
