package datadir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Namespace is the per-application subdirectory under the user data dir.
const Namespace = "clistudy"

// ErrStorageUnavailable means the data directory could not be located or created.
var ErrStorageUnavailable = errors.New("storage unavailable")

// PlatformDataHome returns the OS-conventional user data directory
// ($XDG_DATA_HOME, ~/Library/Application Support, %LOCALAPPDATA%).
func PlatformDataHome() (string, error) {
	if xdg.DataHome == "" {
		return "", fmt.Errorf("%w: could not determine user data directory", ErrStorageUnavailable)
	}
	return xdg.DataHome, nil
}

// Resolve returns <base>/clistudy/sessions.<ext>, creating the namespaced
// directory if needed. An empty base falls back to PlatformDataHome.
func Resolve(base, ext string) (string, error) {
	if base == "" {
		home, err := PlatformDataHome()
		if err != nil {
			return "", err
		}
		base = home
	}

	dir := filepath.Join(base, Namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating data directory: %w", ErrStorageUnavailable, err)
	}
	return filepath.Join(dir, "sessions."+ext), nil
}
