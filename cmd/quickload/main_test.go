package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptdeck/quickload/internal/adapters/fingerprint"
	"github.com/scriptdeck/quickload/internal/adapters/fsscan"
	"github.com/scriptdeck/quickload/internal/adapters/logger"
	"github.com/scriptdeck/quickload/internal/adapters/pathenc"
	"github.com/scriptdeck/quickload/internal/adapters/profile"
	"github.com/scriptdeck/quickload/internal/adapters/searchpath"
	"github.com/scriptdeck/quickload/internal/adapters/sexpr"
	"github.com/scriptdeck/quickload/internal/adapters/store"
	"github.com/scriptdeck/quickload/internal/adapters/watch"
	"github.com/scriptdeck/quickload/internal/app"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/engine/warmer"
	"github.com/scriptdeck/quickload/internal/loader"
	"go.trai.ch/zerr"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	root := t.TempDir()

	return func(context.Context) (*app.Components, error) {
		log := logger.New()
		engine := sexpr.New()
		prof := profile.NewRecorder()
		tableStore := store.NewFile(filepath.Join(t.TempDir(), "modules.qlc"), log)
		cache := loader.NewCache(tableStore, pathenc.NewWithRoot(""), fingerprint.NewMTime(), engine, log, prof)
		cache.Load()
		mpath := searchpath.New([]string{root})
		scan := fsscan.NewScanner(".sx")
		fallback := loader.NewFallback(cache, mpath, engine, scan, ".sx")
		warm := warmer.New(cache, mpath, engine, scan, log, 1)
		settings := &domain.Settings{Roots: []string{root}, Ext: ".sx"}
		return &app.Components{
			App:      app.New(cache, fallback, warm, watch.New(log), prof, log, settings),
			Logger:   log,
			Settings: settings,
		}, nil
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(t.Context(), []string{"version"}, &stdout, &stderr, testProvider(t))
	if code != 0 {
		t.Fatalf("want exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "dev" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestRunProviderFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	failing := func(context.Context) (*app.Components, error) {
		return nil, zerr.New("bootstrap failed")
	}
	code := run(t.Context(), nil, &stdout, &stderr, failing)
	if code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bootstrap failed") {
		t.Fatalf("error should reach stderr, got %q", stderr.String())
	}
}

func TestConfigArg(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"get", "m"}, ""},
		{[]string{"--config", "a.yaml", "get", "m"}, "a.yaml"},
		{[]string{"get", "-c", "b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml"}, "c.yaml"},
		{[]string{"-c=d.yaml"}, "d.yaml"},
		{[]string{"--config"}, ""},
	}
	for _, tc := range cases {
		if got := configArg(tc.args); got != tc.want {
			t.Errorf("configArg(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestRunUnknownModule(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(t.Context(), []string{"get", "absent"}, &stdout, &stderr, testProvider(t))
	if code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
}
