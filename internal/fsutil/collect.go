package fsutil

import (
	"fmt"
	"os"
)

// CollectFiles expands a mixed list of file and directory paths into the
// concrete files a loader should parse. File paths pass through untouched;
// directories are walked recursively for the given extensions.
func CollectFiles(paths []string, extensions ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := FindFilesByExtension(path, extensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
