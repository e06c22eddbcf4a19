package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"fexplorer/internal/config"
	"fexplorer/internal/errors"
	"fexplorer/internal/log"
	"fexplorer/internal/tui"
	"fexplorer/internal/web"
	"fexplorer/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replaces the display for the duration of a test.
func scripted(t *testing.T, clicks ...string) *testutils.ScriptedDisplay {
	t.Helper()
	display := &testutils.ScriptedDisplay{Clicks: clicks}
	saved := openSession
	openSession = func(cfg *config.Config, _ io.Writer) (*session, error) {
		renderer := &testutils.RecordingRenderer{}
		renderer.URLs.Origin = cfg.Browser.Origin
		renderer.URLs.GoUp = cfg.Browser.GoUp
		return &session{renderer: renderer, display: display, run: direct, close: noClose}, nil
	}
	t.Cleanup(func() { openSession = saved })
	return display
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsSelectedFile(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTree(t, root, "games/save.dat", "games/mods/")
	display := scripted(t, "http://localhost/games", "http://localhost/save.dat")

	stdout, _, err := execute(t, root)
	require.NoError(t, err)
	assert.Equal(t, root+"/games/save.dat\n", stdout)
	assert.Len(t, display.Pages, 2)
}

func TestRootCloseReturnsStart(t *testing.T) {
	root := t.TempDir()
	scripted(t)

	stdout, _, err := execute(t, root)
	require.NoError(t, err)
	assert.Equal(t, root+"/\n", stdout)
}

func TestRootHideFlag(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTree(t, root, "keep.txt", "drop.tmp")
	display := scripted(t)

	_, _, err := execute(t, "--hide", "*.tmp", root)
	require.NoError(t, err)
	require.Len(t, display.Pages, 1)

	var labels []string
	for _, l := range display.Pages[0].Links {
		labels = append(labels, l.Label)
	}
	assert.Contains(t, labels, "keep.txt")
	assert.NotContains(t, labels, "drop.tmp")
}

func TestRootOriginFlag(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTree(t, root, "a.txt")
	scripted(t, "app://files/a.txt")

	stdout, _, err := execute(t, "--origin", "app://files/", root)
	require.NoError(t, err)
	assert.Equal(t, root+"/a.txt\n", stdout)
}

func TestRootUnreadableStart(t *testing.T) {
	scripted(t)
	missing := filepath.Join(t.TempDir(), "absent")

	stdout, stderr, err := execute(t, missing)
	require.Error(t, err)
	assert.True(t, errors.IsDirectoryUnreadable(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "absent")
}

func TestRootInvalidDisplay(t *testing.T) {
	scripted(t)

	_, _, err := execute(t, "--display", "hologram", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestRootDebugLogsSteps(t *testing.T) {
	root := t.TempDir()
	scripted(t)
	t.Cleanup(func() { log.SetDebug(false) })

	_, stderr, err := execute(t, "--debug", "--json-log", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"browsing"`)
	assert.Contains(t, stderr, `"message":"selection finished"`)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fexplorer", "config.yaml")
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append([]string{"--config", path, "config", "init"}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)

	_, err = run()
	assert.Error(t, err)

	_, err = run("--force")
	assert.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "starting_folder: /")
	assert.Contains(t, stdout, "mode: tui")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fexplorer dev\n", stdout)
}

func TestNewSession(t *testing.T) {
	t.Run("tui", func(t *testing.T) {
		sess, err := newSession(config.New(), io.Discard)
		require.NoError(t, err)
		assert.IsType(t, &tui.Display{}, sess.display)
		assert.NoError(t, sess.close())
	})

	t.Run("web", func(t *testing.T) {
		cfg := config.New()
		cfg.Display.Mode = config.DisplayWeb
		var out bytes.Buffer

		sess, err := newSession(cfg, &out)
		require.NoError(t, err)
		assert.IsType(t, &web.Server{}, sess.display)
		assert.Contains(t, out.String(), "http://127.0.0.1:")
		assert.NoError(t, sess.close())
	})
}
