// Package envconf fills env-tagged config structs from the process
// environment, optionally seeded from a .env file.
package envconf

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read before parsing when present. Variables already set
// in the environment win over the file.
var DotEnvFile = ".env"

// Load parses environment variables into dst, which must be a non-nil
// pointer to a struct using `env` and `envDefault` tags. Nested structs
// without a tag are parsed recursively.
func Load(dst any) error {
	if dst == nil {
		return errors.New("destination is nil")
	}

	err := godotenv.Load(DotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	err = env.Parse(dst)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
