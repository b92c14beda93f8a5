// Package config provides the configuration loader for quickload.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the configuration file omits a field.
const (
	DefaultExt            = ".sx"
	DefaultInstallRootEnv = "QUICKLOAD_ROOT"
	defaultCacheSubdir    = "quickload"
	defaultCacheFile      = "modules.qlc"
)

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// quickloadFile represents the structure of the quickload.yaml file.
type quickloadFile struct {
	Version        string   `yaml:"version"`
	Roots          []string `yaml:"roots"`
	Ext            string   `yaml:"ext"`
	CacheFile      string   `yaml:"cacheFile"`
	InstallRootEnv string   `yaml:"installRootEnv"`
	Warm           warmDTO  `yaml:"warm"`
}

type warmDTO struct {
	Parallelism int `yaml:"parallelism"`
}

// Load reads the configuration file at path. A missing file is not an error:
// the returned settings then carry defaults only.
func (l *FileLoader) Load(path string) (*domain.Settings, error) {
	var file quickloadFile

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
	}

	return resolve(&file)
}

func resolve(file *quickloadFile) (*domain.Settings, error) {
	settings := &domain.Settings{
		Roots:           file.Roots,
		Ext:             file.Ext,
		CacheFile:       file.CacheFile,
		InstallRootEnv:  file.InstallRootEnv,
		WarmParallelism: file.Warm.Parallelism,
	}

	if len(settings.Roots) == 0 {
		settings.Roots = []string{"modules"}
	}
	if settings.Ext == "" {
		settings.Ext = DefaultExt
	}
	if settings.Ext[0] != '.' {
		return nil, zerr.With(zerr.New("source extension must start with a dot"), "ext", settings.Ext)
	}
	if settings.InstallRootEnv == "" {
		settings.InstallRootEnv = DefaultInstallRootEnv
	}
	if settings.CacheFile == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate user cache directory")
		}
		settings.CacheFile = filepath.Join(dir, defaultCacheSubdir, defaultCacheFile)
	}
	if settings.WarmParallelism < 0 {
		return nil, zerr.With(zerr.New("warm parallelism must not be negative"), "parallelism", settings.WarmParallelism)
	}

	return settings, nil
}
