package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the .env file read by the binaries at startup.
const DefaultDotEnvPath = ".env"

// LoadDotEnv copies KEY=value pairs from path into the process environment
// so that they take part in the APP_* override layer. Variables that are
// already set win over the file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
