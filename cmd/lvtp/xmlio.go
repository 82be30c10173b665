package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ymj120572092/pylabview/lvtext"
)

// sidecarDirFor derives the sidecar directory from the main XML dump path:
// catalog.xml's sidecars live in catalog.xml.d/.
func sidecarDirFor(xmlPath string) string {
	return xmlPath + ".d"
}

func writeXMLDump(xmlPath string, dump *lvtext.Dump) error {
	raw, err := xml.MarshalIndent(dump.Root, "", "  ")
	if err != nil {
		return fmt.Errorf("lvtp: marshaling XML: %w", err)
	}

	if err := os.WriteFile(xmlPath, raw, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("lvtp: writing %s: %w", xmlPath, err)
	}

	if len(dump.Sidecars) == 0 {
		return nil
	}

	dir := sidecarDirFor(xmlPath)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec
		return fmt.Errorf("lvtp: creating sidecar directory %s: %w", dir, err)
	}

	for name, body := range dump.Sidecars {
		if err := os.WriteFile(filepath.Join(dir, name), body, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("lvtp: writing sidecar %s: %w", name, err)
		}
	}

	return nil
}

func readXMLDump(xmlPath string) (*lvtext.Element, map[string][]byte, error) {
	raw, err := os.ReadFile(xmlPath) //nolint:gosec
	if err != nil {
		return nil, nil, fmt.Errorf("lvtp: reading %s: %w", xmlPath, err)
	}

	var root lvtext.Element
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil, nil, fmt.Errorf("lvtp: parsing %s: %w", xmlPath, err)
	}

	sidecars := make(map[string][]byte)

	dir := sidecarDirFor(xmlPath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &root, sidecars, nil
		}

		return nil, nil, fmt.Errorf("lvtp: reading sidecar directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		body, err := os.ReadFile(filepath.Join(dir, entry.Name())) //nolint:gosec
		if err != nil {
			return nil, nil, fmt.Errorf("lvtp: reading sidecar %s: %w", entry.Name(), err)
		}

		sidecars[entry.Name()] = body
	}

	return &root, sidecars, nil
}
