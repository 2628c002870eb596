package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Filter selects the files a directory walk checks
type Filter struct {
	// Extensions lists the checked extensions with their dot. Empty means
	// every supported kind.
	Extensions []string
	// Include and Exclude are gitignore-style patterns relative to the
	// walked root. Exclude wins.
	Include          []string
	Exclude          []string
	RespectGitignore bool
}

// alwaysSkipped directories are never walked
var alwaysSkipped = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// ignoreLayer is a .gitignore file with the directory it applies to
type ignoreLayer struct {
	dir     string
	matcher *ignore.GitIgnore
}

// Collect lists the files under root that the filter selects, sorted. A root
// that is a file is returned as is.
func Collect(root string, filter Filter) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	include, err := compilePatterns(filter.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compilePatterns(filter.Exclude)
	if err != nil {
		return nil, err
	}

	var (
		files  []string
		layers []ignoreLayer
	)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && alwaysSkipped[d.Name()] {
				return filepath.SkipDir
			}
			if path != root && (ignored(layers, path, true) || (exclude != nil && exclude.MatchesPath(rel+"/"))) {
				return filepath.SkipDir
			}
			if filter.RespectGitignore {
				layers, err = pushGitignore(layers, path)
				if err != nil {
					return err
				}
			}
			return nil
		}

		if !filter.accepts(path) {
			return nil
		}
		if ignored(layers, path, false) {
			return nil
		}
		if exclude != nil && exclude.MatchesPath(rel) {
			return nil
		}
		if include != nil && !include.MatchesPath(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}

func (f Filter) accepts(path string) bool {
	if len(f.Extensions) == 0 {
		return KindOf(path) != KindUnsupported
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range f.Extensions {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}

// compilePatterns validates glob patterns and compiles them as one
// gitignore matcher. No patterns yield nil.
func compilePatterns(patterns []string) (*ignore.GitIgnore, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	for _, pattern := range patterns {
		if _, err := filepath.Match(strings.ReplaceAll(pattern, "**", "*"), ""); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}

// pushGitignore adds the .gitignore of dir, when present, to the layers.
// Layers of directories the walk has left are dropped.
func pushGitignore(layers []ignoreLayer, dir string) ([]ignoreLayer, error) {
	kept := layers[:0:0]
	for _, layer := range layers {
		if isWithin(layer.dir, dir) {
			kept = append(kept, layer)
		}
	}

	file := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kept, nil
		}
		return nil, err
	}
	matcher, err := ignore.CompileIgnoreFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, file, err)
	}
	return append(kept, ignoreLayer{dir: dir, matcher: matcher}), nil
}

// ignored reports whether any .gitignore that applies to path ignores it
func ignored(layers []ignoreLayer, path string, dir bool) bool {
	for _, layer := range layers {
		if !isWithin(layer.dir, path) {
			continue
		}
		rel, err := filepath.Rel(layer.dir, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if dir {
			rel += "/"
		}
		if layer.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
