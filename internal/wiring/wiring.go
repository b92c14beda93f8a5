// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/scriptdeck/quickload/internal/adapters/config"
	_ "github.com/scriptdeck/quickload/internal/adapters/fingerprint"
	_ "github.com/scriptdeck/quickload/internal/adapters/fsscan"
	_ "github.com/scriptdeck/quickload/internal/adapters/logger"
	_ "github.com/scriptdeck/quickload/internal/adapters/native"
	_ "github.com/scriptdeck/quickload/internal/adapters/pathenc"
	_ "github.com/scriptdeck/quickload/internal/adapters/profile"
	_ "github.com/scriptdeck/quickload/internal/adapters/searchpath"
	_ "github.com/scriptdeck/quickload/internal/adapters/sexpr"
	_ "github.com/scriptdeck/quickload/internal/adapters/store"
	_ "github.com/scriptdeck/quickload/internal/adapters/watch"
	// Register loader, engine, and app nodes.
	_ "github.com/scriptdeck/quickload/internal/app"
	_ "github.com/scriptdeck/quickload/internal/engine/warmer"
	_ "github.com/scriptdeck/quickload/internal/loader"
)
