// Package config loads server and engine settings from a TOML file.
// Every retry/attempt budget the engine relies on for bounded runtime is
// settable here.
package config

import (
	"github.com/BurntSushi/toml"

	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
)

type Config struct {
	Addr        string `toml:"addr"`
	PersistPath string `toml:"persist_path"`
	LogLevel    string `toml:"log_level"`
	Engine      Engine `toml:"engine"`
}

type Engine struct {
	PathRestarts    int `toml:"path_restarts"`
	SolverMaxNodes  int `toml:"solver_max_nodes"`
	BuilderAttempts int `toml:"builder_attempts"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Engine: Engine{
			PathRestarts:    pathgen.DefaultMaxRestarts,
			SolverMaxNodes:  solver.DefaultMaxNodes,
			BuilderAttempts: builder.DefaultMaxAttempts,
		},
	}
}

// Load reads a TOML file over the defaults; absent keys keep defaults.
func Load(filename string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(filename, &cfg)
	return cfg, err
}
