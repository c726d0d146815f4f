package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data", cfg.PersistPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, pathgen.DefaultMaxRestarts, cfg.Engine.PathRestarts)
	assert.Equal(t, solver.DefaultMaxNodes, cfg.Engine.SolverMaxNodes)
	assert.Equal(t, builder.DefaultMaxAttempts, cfg.Engine.BuilderAttempts)
}

func TestLoadOverridesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hexkudo.toml")
	body := `
addr = ":9090"
log_level = "debug"

[engine]
solver_max_nodes = 5000
`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.Engine.SolverMaxNodes)

	// Absent keys keep their defaults.
	assert.Equal(t, "./data", cfg.PersistPath)
	assert.Equal(t, pathgen.DefaultMaxRestarts, cfg.Engine.PathRestarts)
	assert.Equal(t, builder.DefaultMaxAttempts, cfg.Engine.BuilderAttempts)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
