package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding the config file.
const (
	EnvDatabase = "CARTLOAD_DATABASE"
	EnvPort     = "CARTLOAD_PORT"
)

// LoadDotEnv reads .env files into the process environment.
//
// Missing files are not an error. Variables already set in the
// environment win over file content.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		godotenv.Load()
		return
	}
	for _, f := range files {
		godotenv.Load(f)
	}
}

// WithEnvOverrides returns a copy of the config with values taken
// from the environment where set.
func (c *ServerConfig) WithEnvOverrides() *ServerConfig {
	out := *c
	if v, ok := os.LookupEnv(EnvDatabase); ok && v != "" {
		out.database = v
	}
	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		if p, err := strconv.ParseInt(v, 10, 32); err == nil && 0 < p {
			out.port = int32(p)
		}
	}
	return &out
}
