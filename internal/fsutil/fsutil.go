// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// BlueprintExt is the file extension convention for blueprint documents.
const BlueprintExt = ".blueprint"

// IsBlueprintPath reports whether path follows the blueprint naming
// convention: a ".blueprint" extension, or ".json" with a ".blueprint" stem
// (e.g. "app.blueprint.json").
func IsBlueprintPath(path string) bool {
	return strings.HasSuffix(path, BlueprintExt) ||
		strings.HasSuffix(path, BlueprintExt+".json")
}

// FindBlueprints recursively searches the given root path for all blueprint
// documents and returns their full paths.
func FindBlueprints(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsBlueprintPath(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
