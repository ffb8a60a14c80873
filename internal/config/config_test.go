package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()

	assert.Equal(t, DefaultEpsilon, cfg.Epsilon)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.False(t, cfg.Comma)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
}

func TestLoad_LocalFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	yaml := "epsilon: 0.5\ncomma: true\ntheme: mono\n"
	require.NoError(t, os.WriteFile(".numdiff.yaml", []byte(yaml), 0o644))

	cfg := Load()

	assert.Equal(t, 0.5, cfg.Epsilon)
	assert.True(t, cfg.Comma)
	assert.Equal(t, "mono", cfg.Theme)
	// Keys absent from the file keep their defaults.
	assert.False(t, cfg.Verbose)
}

func TestLoad_ZeroEpsilonIsRespected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, os.WriteFile(".numdiff.yaml", []byte("epsilon: 0\n"), 0o644))

	cfg := Load()
	assert.Equal(t, 0.0, cfg.Epsilon)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, os.WriteFile(".numdiff.yaml", []byte("epsilon: [not a float\n"), 0o644))

	cfg := Load()
	assert.Equal(t, DefaultEpsilon, cfg.Epsilon)
}
