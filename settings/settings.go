package settings

import (
	"fmt"

	"github.com/joho/godotenv"
)

// DotEnvFile is the conventional settings file name, resolved relative to the
// process working directory by the package-level accessors.
const DotEnvFile = ".env"

// Source identifies the settings file an accessor reads. The zero value reads
// DotEnvFile. A Source carries no state beyond the path: every accessor call
// opens, parses, and discards the file independently.
type Source struct {
	path string
}

// FromFile returns a Source that reads the settings file at path.
func FromFile(path string) Source {
	return Source{path: path}
}

// Path returns the file path this Source reads.
func (s Source) Path() string {
	if s.path == "" {
		return DotEnvFile
	}
	return s.path
}

// read parses the settings file into a fresh key-value map. Values keep any
// embedded '=' characters and have one layer of surrounding quotes stripped;
// comment and blank lines are ignored. A later assignment to the same key
// overrides an earlier one.
func (s Source) read() (map[string]string, error) {
	values, err := godotenv.Read(s.Path())
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", s.Path(), err)
	}
	return values, nil
}

// require returns the value for key, or a MissingConfigurationError when the
// key is absent or empty. Required keys are always enforced; there is no mode
// in which these checks are skipped.
func require(values map[string]string, service, key string) (string, error) {
	value := values[key]
	if value == "" {
		return "", &MissingConfigurationError{Service: service, Key: key}
	}
	return value, nil
}
