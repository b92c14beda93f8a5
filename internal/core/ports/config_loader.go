package ports

import "github.com/scriptdeck/quickload/internal/core/domain"

// ConfigLoader defines the interface for loading the loader configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the resolved
	// settings. A missing file yields defaults.
	Load(path string) (*domain.Settings, error)
}
