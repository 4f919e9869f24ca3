package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/gobbmd/pkg/config"
)

// discoverInputs expands the command arguments into a sorted list of BBCode
// source files. File arguments are taken as-is regardless of extension;
// directory arguments are walked recursively and filtered by the configured
// extensions and ignore globs.
func discoverInputs(ctx context.Context, args []string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range args {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		path := filepath.Clean(arg)

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		discovered, err := walkSourceDir(ctx, path, cfg)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// walkSourceDir walks one directory and collects matching source files.
// Hidden entries are skipped, as are unreadable subtrees.
func walkSourceDir(ctx context.Context, root string, cfg *config.Config) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesIgnore(relPath, cfg.Ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !hasSourceExtension(path, cfg.Extensions) {
			return nil
		}
		if matchesIgnore(relPath, cfg.Ignore) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasSourceExtension reports whether the file carries one of the configured
// extensions, case-insensitively.
func hasSourceExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// matchesIgnore checks the relative path against the ignore globs. A
// pattern containing "**" matches by prefix/suffix; otherwise it is tried
// against the full relative path and against the base name.
func matchesIgnore(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if strings.Contains(pattern, "**") {
			if matchDoubleStar(relPath, pattern) {
				return true
			}
			continue
		}

		if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

// matchDoubleStar handles the two common recursive forms, "**/name" and
// "dir/**". Anything more elaborate falls back to a prefix+suffix check.
func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" {
		return true
	}

	if strings.HasSuffix(path, suffix) {
		return true
	}
	for _, component := range strings.Split(path, "/") {
		if matched, err := filepath.Match(suffix, component); err == nil && matched {
			return true
		}
	}
	return false
}
