package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sutext.github.io/bithelper/xlog"
)

const scripts = "../../internal/script/testdata/"

func TestLoadConfig(t *testing.T) {
	cfg, err := readConfig("testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, &config{LogLevel: "debug", JSON: true, Backing: "bool", Parallel: 2}, cfg)
	assert.Equal(t, xlog.LevelDebug, cfg.Level())

	cfg, err = readConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, xlog.LevelInfo, cfg.Level())

	_, err = readConfig("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var stdout, logs bytes.Buffer
	logger := xlog.New(&logs, xlog.LevelDebug, false)
	paths := []string{scripts + "aaaa.yaml", scripts + "mixed.yaml"}

	require.NoError(t, run(&config{Parallel: 2}, paths, &stdout, logger))
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "four a\tuint8\t29\t056100ff", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "mixed\tuint8\t"))
	assert.Contains(t, logs.String(), "name=scripts.ok count=2")
}

func TestRunBackingOverride(t *testing.T) {
	var stdout bytes.Buffer
	err := run(&config{Backing: "bool"}, []string{scripts + "aaaa.yaml"}, &stdout, xlog.Discard())
	require.NoError(t, err)
	assert.Equal(t, "four a\tbool\t29\t056100ff\n", stdout.String())
}

func TestRunFailures(t *testing.T) {
	var stdout, logs bytes.Buffer
	logger := xlog.New(&logs, xlog.LevelInfo, false)
	paths := []string{"testdata/broken.yaml", scripts + "aaaa.yaml", "testdata/missing.yaml"}

	err := run(&config{}, paths, &stdout, logger)
	assert.Error(t, err)
	assert.Equal(t, "four a\tuint8\t29\t056100ff\n", stdout.String())
	assert.Contains(t, logs.String(), "300 overflows int8")
	assert.Contains(t, logs.String(), "missing.yaml")
}
