// Command lvtp inspects and rewrites the VCTP connector catalog embedded in
// LabVIEW-style resource files. It exercises the whole core pipeline end to
// end: rsrc locates the VCTP block, catalog parses/serializes it, and
// lvtext projects it to and from an XML tree with sidecar files for any
// block it cannot fully decode inline.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "lvtp",
		Usage: "read and rewrite the VCTP connector catalog in a LabVIEW resource file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rsrc",
				Usage: "path to the .vi/.ctl/... resource file",
			},
			&cli.StringFlag{
				Name:  "xml",
				Usage: "path to the textual catalog dump",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print accumulated diagnostics to stderr",
			},
		},
		Commands: []*cli.Command{
			listCommand,
			infoCommand,
			dumpCommand,
			extractCommand,
			createCommand,
			passwordCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
