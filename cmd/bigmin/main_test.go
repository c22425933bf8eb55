package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rbrabson/bigmin/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStdin(t *testing.T) {
	t.Setenv("BIGMIN_INPUT", "")
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("42\n1\n0, 1\n")

	code := run(nil, stdin, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "min element of [[42] [1] [0 1]] is [1]\n", stdout.String())
}

func TestRunEmpty(t *testing.T) {
	t.Setenv("BIGMIN_INPUT", "")
	var stdout, stderr bytes.Buffer

	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "min element of [] is <no value>\n", stdout.String())
}

func TestRunFloat(t *testing.T) {
	t.Setenv("BIGMIN_INPUT", "")
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("4\n2.5\nnot a float\n-3\n")

	code := run([]string{"--float"}, stdin, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "min element of [4 2.5 -3] is -3\n", stdout.String())

	stdout.Reset()
	code = run([]string{"--float"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "min element of [] is <no value>\n", stdout.String())
}

func TestRunInputFileWithTable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(filename, []byte("1 2 3\n3 2 1\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--input", filename, "--table"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)

	out := stdout.String()
	assert.Contains(t, out, "DIGITS")
	assert.Contains(t, out, "[1 2 3]")
	assert.True(t, strings.HasSuffix(out, "min element of [[1 2 3] [3 2 1]] is [3 2 1]\n"))
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.txt")

	code := run([]string{"--input", missing}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestApplyOptions(t *testing.T) {
	cfg := &config.Config{LogLevel: log.InfoLevel, Locale: "en", Input: "env.txt"}

	applyOptions(cfg, &Options{})
	assert.Equal(t, &config.Config{LogLevel: log.InfoLevel, Locale: "en", Input: "env.txt"}, cfg)

	applyOptions(cfg, &Options{Input: "flag.txt", Locale: "de", LogLevel: "debug"})
	assert.Equal(t, "flag.txt", cfg.Input)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
}
