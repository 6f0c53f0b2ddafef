package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ResolvePath expands environment variables and a leading "~" in path, then
// converts the result into an absolute path. It never touches the filesystem
// beyond looking up the current user's home directory.
func ResolvePath(path string) (string, error) {
	expanded := os.ExpandEnv(path)

	if expanded == "~" || strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WithMessage(err, "failed to locate home directory")
		}
		expanded = filepath.Join(home, expanded[1:])
	}

	resolved, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.WithMessagef(err, "failed to resolve path %s", path)
	}

	return resolved, nil
}
