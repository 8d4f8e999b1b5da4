// Command tiffinfo prints the header and primary directory structure of a
// TIFF file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/gobaker/tiffmeta"
)

func main() {
	app := &cli.Command{
		Name:      "tiffinfo",
		Usage:     "Print the header and IFD structure of a TIFF file",
		ArgsUsage: "<file.tif>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "lenient",
				Usage: "skip entries with unknown tags or types instead of failing",
			},
			&cli.BoolFlag{
				Name:  "values",
				Usage: "resolve values stored out of line",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}
	path := cmd.Args().First()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := tiffmeta.Decode(tiffmeta.Options{
		R:       f,
		Lenient: cmd.Bool("lenient"),
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	})
	if err != nil {
		return err
	}

	h := res.Header
	fmt.Printf("File: %s\n", path)
	fmt.Printf("Byte order: %s | magic: %d | IFD offset: %d | entries: %d\n",
		h.ByteOrder, h.Magic, h.DirectoryOffset, res.Directory.Count)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Tag", "Type", "Count", "Value/Offset", "Value"})

	for _, e := range res.Directory.Entries {
		val := e.Value
		if val == nil && cmd.Bool("values") {
			v, err := res.ResolveValue(e)
			if err != nil {
				v = fmt.Sprintf("<%v>", err)
			}
			val = v
		}

		rendered := ""
		switch {
		case val != nil:
			rendered = fmt.Sprintf("%v", val)
		case !e.Inline():
			rendered = fmt.Sprintf("@%d", e.ValueOffset)
		}

		t.AppendRow(table.Row{e.Index, e.Tag, e.Type, e.Count, e.ValueOffset, rendered})
	}

	t.Render()
	return nil
}
