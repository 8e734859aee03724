package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// AllowedExtensions lists the suffixes scanned when not every file type is requested
var AllowedExtensions = []string{
	".py", ".md", ".rst", ".rs", ".js", ".html", ".txt", ".c", ".tf", ".tfstate",
}

// HasAllowedExtension reports whether the base name of path ends with one of
// AllowedExtensions. The match is case-sensitive.
func HasAllowedExtension(path string) bool {
	name := filepath.Base(path)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsHidden reports whether a directory entry name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Ignorer decides whether a path relative to the traversal root is excluded.
type Ignorer interface {
	MatchesPath(relPath string) bool
}

// LoadGitignore compiles root/.gitignore. Returns nil when the file is missing
// or cannot be parsed.
func LoadGitignore(root string) Ignorer {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(gitignorePath); err != nil {
		return nil
	}

	gitignore, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil
	}
	return gitignore
}

// IsIgnored reports whether path, located under root, matches ig. Directory
// paths get a trailing slash so "dir/" patterns apply to them.
// A nil Ignorer matches nothing.
func IsIgnored(ig Ignorer, root, path string, isDir bool) bool {
	if ig == nil {
		return false
	}
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if isDir {
		relPath += "/"
	}
	return ig.MatchesPath(relPath)
}
