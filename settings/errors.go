package settings

import "fmt"

// MissingConfigurationError reports that a key a service requires is absent
// from the settings file, or present with an empty value. It is the only
// error kind the accessors produce themselves; failures to read the file
// surface as wrapped I/O errors instead.
type MissingConfigurationError struct {
	// Service is the display name of the integration whose accessor failed,
	// e.g. "Azure OpenAI".
	Service string
	// Key is the settings key that was absent or empty, e.g. "OPENAI_API_KEY".
	Key string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s settings: missing required key %s", e.Service, e.Key)
}
