// Package adapter contains the host-side infrastructure the scope engine
// relies on: documents, scope providers, selector scoring and file access.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// schemeExtensions lists the color scheme file types the engine can search.
var schemeExtensions = map[string]bool{
	".tmtheme":        true,
	".hidden-tmtheme": true,
}

// SourceFSAdapter abstracts filesystem-specific operations so the workflow
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FindSchemes collects color scheme files under the provided roots. A root
	// ending in "/..." is scanned recursively; a file root is returned as is.
	FindSchemes(roots []m.Path) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// OpenDocument reads path into an indexed Document.
	OpenDocument(path m.Path) (Document, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// AbsPath expands "~" and makes path absolute.
	AbsPath(path m.Path) (m.Path, error)

	// SameFile reports whether a and b name the same file.
	SameFile(a, b m.Path) bool
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// IsSchemeFile reports whether path has a color scheme extension.
func IsSchemeFile(path m.Path) bool {
	return schemeExtensions[strings.ToLower(filepath.Ext(string(path)))]
}

// FindSchemes collects scheme files for the provided roots, deduplicated and
// in walk order.
func (a *LocalSourceFSAdapter) FindSchemes(roots []m.Path) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	seen := make(map[m.Path]struct{})

	var schemes []m.Path

	add := func(path m.Path) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		schemes = append(schemes, path)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(m.Path(rootPath))
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !IsSchemeFile(m.Path(path)) {
				return nil
			}

			add(m.Path(path))

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return schemes, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// OpenDocument reads path into a TextDocument.
func (a *LocalSourceFSAdapter) OpenDocument(path m.Path) (Document, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewTextDocument(path, string(content)), nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath expands a leading "~" and returns the absolute path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, _, err := normalizeRootPath(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// SameFile compares absolute paths and falls back to os.SameFile so links
// to the scheme are recognised too.
func (a *LocalSourceFSAdapter) SameFile(left, right m.Path) bool {
	if left == "" || right == "" {
		return false
	}

	absLeft, errLeft := a.AbsPath(left)
	absRight, errRight := a.AbsPath(right)

	if errLeft == nil && errRight == nil && absLeft == absRight {
		return true
	}

	infoLeft, err := os.Stat(string(left))
	if err != nil {
		return false
	}

	infoRight, err := os.Stat(string(right))
	if err != nil {
		return false
	}

	return os.SameFile(infoLeft, infoRight)
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
