package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptdeck/quickload/cmd/quickload/commands"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, root string) *app.App {
	t.Helper()

	log := logger.New()
	engine := sexpr.New()
	prof := profile.NewRecorder()
	tableStore := store.NewFile(filepath.Join(t.TempDir(), "modules.qlc"), log)
	cache := loader.NewCache(tableStore, pathenc.NewWithRoot(""), fingerprint.NewMTime(), engine, log, prof)
	cache.Load()
	mpath := searchpath.New([]string{root})
	scan := fsscan.NewScanner(".sx")
	fallback := loader.NewFallback(cache, mpath, engine, scan, ".sx")
	warm := warmer.New(cache, mpath, engine, scan, log, 2)
	settings := &domain.Settings{Roots: []string{root}, Ext: ".sx"}
	return app.New(cache, fallback, warm, watch.New(log), prof, log, settings)
}

func writeSource(t *testing.T, root, rel, src string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func execute(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := commands.New(a)
	cli.SetArgs(args)
	cli.SetOutput(&stdout, &stderr)
	err := cli.Execute(t.Context())
	return stdout.String(), err
}

func TestGetPrintsExportValue(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "greet.sx", `(concat "hello " "cli")`)

	a := newTestApp(t, root)
	out, err := execute(t, a, "get", "greet")
	require.NoError(t, err)
	assert.Equal(t, "hello cli\n", out)
}

func TestGetUnknownModuleFails(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	_, err := execute(t, a, "get", "absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestGetWithStats(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "m.sx", `1`)

	a := newTestApp(t, root)
	out, err := execute(t, a, "get", "--stats", "m")
	require.NoError(t, err)
	assert.Contains(t, out, "1 compiles")
}

func TestWarmReportsStats(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.sx", `1`)
	writeSource(t, root, "b.sx", `2`)

	a := newTestApp(t, root)
	out, err := execute(t, a, "warm")
	require.NoError(t, err)
	assert.Equal(t, "compiled 2, skipped 0, failed 0\n", out)
}

func TestLsListsCachedModules(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "alpha.sx", `1`)

	a := newTestApp(t, root)
	_, err := execute(t, a, "warm")
	require.NoError(t, err)

	out, err := execute(t, a, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "MODULE")
	assert.Contains(t, out, "alpha")
}

func TestLsEmptyCache(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	out, err := execute(t, a, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "cache empty")
}

func TestClearRemovesStore(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "m.sx", `1`)

	a := newTestApp(t, root)
	_, err := execute(t, a, "warm")
	require.NoError(t, err)

	out, err := execute(t, a, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")
	assert.Equal(t, 0, a.Len())
}

func TestStatsAfterGet(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "m.sx", `1`)

	a := newTestApp(t, root)
	_, err := execute(t, a, "get", "m")
	require.NoError(t, err)

	out, err := execute(t, a, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1 compiles")
}

func TestFlushPersistsEntries(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "m.sx", `1`)

	a := newTestApp(t, root)
	_, err := execute(t, a, "get", "m")
	require.NoError(t, err)

	_, err = execute(t, a, "flush")
	require.NoError(t, err)

	path := a.CachePath()
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Positive(t, info.Size())
}

func TestVersion(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	out, err := execute(t, a, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestHelp(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	_, err := execute(t, a, "--help")
	require.NoError(t, err)
}
