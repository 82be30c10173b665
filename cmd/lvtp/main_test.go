package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/rsrc"
)

func buildFixtureFile(t *testing.T) string {
	t.Helper()

	// A minimal VCTP: one record count (u32) followed by one Void connector
	// record (length=4, flags=0, tag=0x00).
	vctp := []byte{
		0x00, 0x00, 0x00, 0x01, // catalog_count = 1
		0x00, 0x04, 0x00, 0x00, // Void record: length=4, flags=0, tag=0x00
	}

	raw := rsrc.Write(rsrc.FileTypeVI, []rsrc.Block{
		{Tag: [4]byte{'V', 'C', 'T', 'P'}, Data: vctp},
	})

	path := filepath.Join(t.TempDir(), "fixture.vi")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	return path
}

func TestListAndInfoCommands(t *testing.T) {
	path := buildFixtureFile(t)

	app := newApp()
	require.NoError(t, app.Run([]string{"lvtp", "--rsrc", path, "list"}))
	require.NoError(t, app.Run([]string{"lvtp", "--rsrc", path, "info"}))
}

func TestDumpThenCreateRoundTrip(t *testing.T) {
	srcPath := buildFixtureFile(t)
	xmlPath := filepath.Join(t.TempDir(), "catalog.xml")
	dstPath := filepath.Join(t.TempDir(), "rebuilt.vi")

	app := newApp()
	require.NoError(t, app.Run([]string{"lvtp", "--rsrc", srcPath, "--xml", xmlPath, "dump"}))
	require.NoError(t, app.Run([]string{"lvtp", "--xml", xmlPath, "--rsrc", dstPath, "create"}))

	rebuilt, err := os.ReadFile(dstPath)
	require.NoError(t, err)

	f, err := rsrc.Parse(rebuilt)
	require.NoError(t, err)

	vctp, ok := f.VCTP()
	require.True(t, ok)
	require.NotEmpty(t, vctp)
}

func TestExtractCommand(t *testing.T) {
	srcPath := buildFixtureFile(t)
	outPath := filepath.Join(t.TempDir(), "vctp.bin")

	app := newApp()
	require.NoError(t, app.Run([]string{"lvtp", "--rsrc", srcPath, "extract", "VCTP", outPath}))

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NotEmpty(t, body)
}

func TestPasswordCommandReportsUnimplemented(t *testing.T) {
	app := newApp()
	err := app.Run([]string{"lvtp", "password"})
	require.Error(t, err)
}
