// Package textio handles document loading and result persistence for the
// comparison tools. The similarity core itself never touches the filesystem;
// callers hand it decoded text.
package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// unsafeFragments are rejected by VerifyPathSafety. Globs and shell
// metacharacters have no business in a document path, and ".." keeps
// comparisons inside the directory the caller chose.
var unsafeFragments = []string{"..", "~", "*", "?", "|", "<", ">", `"`, ";"}

// VerifyPathSafety reports whether path is acceptable as a document or
// output location.
func VerifyPathSafety(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	for _, fragment := range unsafeFragments {
		if strings.Contains(path, fragment) {
			return false
		}
	}
	return true
}

// LoadContent reads the UTF-8 text content of a regular file.
func LoadContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a regular file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8", path)
	}
	return string(data), nil
}

// PersistContent writes content to path, creating parent directories as needed.
func PersistContent(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
