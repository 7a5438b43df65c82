package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
)

func TestStoriesCommand(t *testing.T) {
	flags := &globalFlags{dir: t.TempDir()}

	cmd := storiesCmd(flags)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--kind", "toast", "--json"})
	require.NoError(t, cmd.Execute())

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "toast", e["kind"])
	}
}

func TestRenderCommand(t *testing.T) {
	flags := &globalFlags{dir: t.TempDir()}

	cmd := renderCmd(flags)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"toast-error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Upload failed")

	cmd = renderCmd(flags)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.True(t, errors.HasCode(err, "E140"))

	cmd = renderCmd(flags)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"nope"})
	assert.True(t, errors.HasCode(cmd.Execute(), "E112"))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	flags := &globalFlags{dir: dir}

	cmd := initCmd(flags)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, config.ConfigFileName))

	cmd = initCmd(flags)
	cmd.SetArgs([]string{})
	assert.True(t, errors.HasCode(cmd.Execute(), "E140"))

	cmd = initCmd(flags)
	cmd.SetArgs([]string{"--force"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Gallery.Port)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "site")
	flags := &globalFlags{dir: dir}

	cmd := exportCmd(flags)
	cmd.SetArgs([]string{"--target", out})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(out, "index.html"))
	assert.NoError(t, err)
}
