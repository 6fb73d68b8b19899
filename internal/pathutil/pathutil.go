// Package pathutil resolves local model folders.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands ~ to the home directory.
// Returns the path unchanged if it doesn't start with ~/.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ResolveFolder returns the path of a model folder named name under baseDir.
// - An empty or "." baseDir leaves name relative to the working directory
// - ~/... base directories are expanded to the home directory
// - Empty names are not allowed and return an error
func ResolveFolder(baseDir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("folder name cannot be empty")
	}
	if baseDir == "" || baseDir == "." {
		return name, nil
	}

	base, err := ExpandTilde(baseDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, name), nil
}
