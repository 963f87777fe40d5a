package mela

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write packs recipes into an archive at path, one JSON entry per recipe.
// The archive is assembled in memory and written in a single pass so a
// failed conversion never leaves a partial file behind. Recipes without an
// identifier get one assigned.
func Write(path string, recipes []Recipe) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := range recipes {
		recipes[i].EnsureID()
		data, err := json.Marshal(&recipes[i])
		if err != nil {
			return fmt.Errorf("encode recipe %q: %w", recipes[i].Title, err)
		}
		entry, err := zw.Create(recipes[i].Filename())
		if err != nil {
			return fmt.Errorf("create archive entry for %q: %w", recipes[i].Title, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write archive entry for %q: %w", recipes[i].Title, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write archive %s: %w", path, err)
	}
	return nil
}

// Read decodes every recipe entry in the archive at path, in archive order.
// A single unreadable entry fails the whole read.
func Read(path string) ([]Recipe, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer zr.Close()

	recipes := make([]Recipe, 0, len(zr.File))
	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", file.Name, err)
		}
		var recipe Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			return nil, fmt.Errorf("decode entry %s: %w", file.Name, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
