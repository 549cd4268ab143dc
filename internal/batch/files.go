package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is the resolved batch input: a single file or a directory tree.
type Source struct {
	Root   string
	IsFile bool
	Files  []string
}

// Discover resolves input to an absolute path and lists the PNG files it
// names. A file input is selected only if it has a .png extension; a
// directory is walked recursively. Files are returned in lexical order.
func Discover(input string) (Source, error) {
	root, err := filepath.Abs(input)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", input, err)
	}

	st, err := os.Stat(root)
	if err != nil {
		return Source{}, fmt.Errorf("input not found: %w", err)
	}

	if !st.IsDir() {
		src := Source{Root: root, IsFile: true}
		if isPNG(root) {
			src.Files = []string{root}
		}
		return src, nil
	}

	src := Source{Root: root}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && isPNG(path) {
			src.Files = append(src.Files, path)
		}
		return nil
	})
	if err != nil {
		return Source{}, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(src.Files)
	return src, nil
}

// Destination maps a source file to its output path. In-place runs overwrite
// the source; a file input writes to output itself; a directory input mirrors
// the file's path relative to the root under output.
func (s Source) Destination(file, output string, inPlace bool) (string, error) {
	if inPlace {
		return file, nil
	}
	if output == "" {
		return "", fmt.Errorf("either an output path or in-place mode is required")
	}

	out, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", output, err)
	}
	if s.IsFile {
		return out, nil
	}

	rel, err := filepath.Rel(s.Root, file)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", file, err)
	}
	return filepath.Join(out, rel), nil
}

func isPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
