package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ymj120572092/pylabview/catalog"
	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/lvtext"
	"github.com/ymj120572092/pylabview/lvver"
	"github.com/ymj120572092/pylabview/rsrc"
)

// defaultVersion is the capability gate used when a binary VCTP block
// doesn't otherwise carry its originating LabVIEW version (spec.md leaves
// cross-version schema migration out of scope; lvtp targets the newest
// encoding rules rather than guessing an older one).
func defaultVersion() lvver.Version {
	return lvver.New(20, 0, 3, lvver.StageFinal)
}

func defaultContext() connector.Context {
	return connector.Context{Version: defaultVersion()}
}

func reportFindings(ctx *cli.Context, sink *diag.Sink) {
	if !ctx.Bool("verbose") {
		return
	}

	for _, f := range sink.Findings() {
		fmt.Fprintln(os.Stderr, f.String())
	}
}

func requireFlag(ctx *cli.Context, name string) (string, error) {
	v := ctx.String(name)
	if v == "" {
		return "", fmt.Errorf("lvtp: --%s is required", name)
	}

	return v, nil
}

func openRSRC(ctx *cli.Context) (*rsrc.File, error) {
	path, err := requireFlag(ctx, "rsrc")
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("lvtp: reading %s: %w", path, err)
	}

	f, err := rsrc.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("lvtp: parsing %s: %w", path, err)
	}

	return f, nil
}

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "print the resource file's block directory",
	Action: func(ctx *cli.Context) error {
		f, err := openRSRC(ctx)
		if err != nil {
			return err
		}

		for _, e := range f.Directory.Entries() {
			start, end := f.Directory.Range(e)
			fmt.Printf("%-4s %8d bytes  [%d:%d)\n", e.TagString(), e.Count, start, end)
		}

		return nil
	},
}

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "print the chained resource header summary",
	Action: func(ctx *cli.Context) error {
		f, err := openRSRC(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("file type: %s (.%s)\n", f.Type(), f.Type().Ext())

		for i, h := range f.Headers {
			fmt.Printf("header %d: version=%d offset=%d size=%d\n", i, h.Version, h.Offset, h.Size)
		}

		return nil
	},
}

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "project the VCTP catalog to an XML tree and sidecar files",
	Action: func(ctx *cli.Context) error {
		xmlPath, err := requireFlag(ctx, "xml")
		if err != nil {
			return err
		}

		f, err := openRSRC(ctx)
		if err != nil {
			return err
		}

		vctp, ok := f.VCTP()
		if !ok {
			return fmt.Errorf("lvtp: %s has no VCTP block", ctx.String("rsrc"))
		}

		sink := diag.NewSink()

		cat, err := catalog.Parse(vctp, defaultContext(), sink)
		if err != nil {
			return fmt.Errorf("lvtp: parsing VCTP catalog: %w", err)
		}

		reportFindings(ctx, sink)

		dump, err := lvtext.FromCatalog(cat, defaultContext(), lvtext.DumpOptions{})
		if err != nil {
			return fmt.Errorf("lvtp: projecting catalog to text: %w", err)
		}

		if err := writeXMLDump(xmlPath, dump); err != nil {
			return err
		}

		if dump.Collisions.HasCollision() && ctx.Bool("verbose") {
			fmt.Fprintln(os.Stderr, "lvtp: warning: sidecar content-hash collision detected")
		}

		return nil
	},
}

var createCommand = &cli.Command{
	Name:  "create",
	Usage: "rebuild a VCTP catalog from an XML dump and write a resource file",
	Action: func(ctx *cli.Context) error {
		xmlPath, err := requireFlag(ctx, "xml")
		if err != nil {
			return err
		}

		rsrcPath, err := requireFlag(ctx, "rsrc")
		if err != nil {
			return err
		}

		root, sidecars, err := readXMLDump(xmlPath)
		if err != nil {
			return err
		}

		sink := diag.NewSink()

		cat, err := lvtext.ToCatalog(root, sidecars, defaultContext(), sink)
		if err != nil {
			return fmt.Errorf("lvtp: rebuilding catalog from %s: %w", xmlPath, err)
		}

		reportFindings(ctx, sink)

		vctp := catalog.Serialize(cat, defaultContext())

		raw := rsrc.Write(rsrc.FileTypeVI, []rsrc.Block{
			{Tag: [4]byte{'V', 'C', 'T', 'P'}, Data: vctp},
		})

		if err := os.WriteFile(rsrcPath, raw, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("lvtp: writing %s: %w", rsrcPath, err)
		}

		return nil
	},
}

var extractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "write a named block's raw bytes to a file",
	ArgsUsage: "<block-tag> <output-path>",
	Action: func(ctx *cli.Context) error {
		if ctx.Args().Len() != 2 {
			return cli.Exit("lvtp: extract requires <block-tag> <output-path>", 2)
		}

		f, err := openRSRC(ctx)
		if err != nil {
			return err
		}

		tag := ctx.Args().Get(0)
		out := ctx.Args().Get(1)

		b, ok := f.Block(tag)
		if !ok {
			return fmt.Errorf("lvtp: %s has no %q block", ctx.String("rsrc"), tag)
		}

		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil { //nolint:gosec
			return fmt.Errorf("lvtp: creating output directory: %w", err)
		}

		if err := os.WriteFile(out, b.Data, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("lvtp: writing %s: %w", out, err)
		}

		return nil
	},
}

var passwordCommand = &cli.Command{
	Name:  "password",
	Usage: "not implemented: auxiliary block password hashing is out of scope",
	Action: func(ctx *cli.Context) error {
		return cli.Exit("lvtp: password hashing is not implemented", 1)
	},
}
