// FilePath: internal/repository/files/files.settings.go
package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/repository"
)

const (
	defaultPermissions = 0755
	filePermissions    = 0644
	settingsExtension  = ".txt"
)

// keys become file names, so only a safe charset is accepted
var keyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// SettingsRepo implements the SettingsStore interface on plain files, one
// value per file. Meant for single-board installs that run without Redis.
type SettingsRepo struct {
	basePath string
	mu       sync.Mutex
}

// NewSettingsRepository creates a file-backed settings store rooted at basePath
func NewSettingsRepository(basePath string) (*SettingsRepo, error) {
	if err := createDirectoryIfNotExists(basePath); err != nil {
		return nil, err
	}
	return &SettingsRepo{basePath: basePath}, nil
}

func (r *SettingsRepo) GetInt(ctx context.Context, key string) (int, error) {
	path, err := r.settingPath(key)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, repository.ErrNotFound
		}
		return 0, fmt.Errorf("read setting %s: %w", key, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", repository.ErrInvalidValue, strings.TrimSpace(string(data)))
	}
	return n, nil
}

func (r *SettingsRepo) SetInt(ctx context.Context, key string, value int) error {
	path, err := r.settingPath(key)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Write through a temp file and rename so a crash mid-write never
	// leaves a half-written value behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(value)+"\n"), filePermissions); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename setting %s: %w", key, err)
	}

	nuts.L.Debugf("[SettingsRepo] Stored %s=%d", key, value)
	return nil
}

func (r *SettingsRepo) Ping(ctx context.Context) error {
	if _, err := os.Stat(r.basePath); err != nil {
		return fmt.Errorf("settings directory unavailable: %w", err)
	}
	return nil
}

func (r *SettingsRepo) settingPath(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: invalid settings key %q", repository.ErrInvalidValue, key)
	}
	return filepath.Join(r.basePath, key+settingsExtension), nil
}

func createDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		err := os.MkdirAll(path, defaultPermissions)
		if err != nil {
			return errors.NewInternalError("failed to create directory", err)
		}
	}
	return nil
}
