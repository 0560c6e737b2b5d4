package settings

const keyGooglePaLMAPIKey = "GOOGLE_PALM_API_KEY"

// GooglePaLM reads the Google PaLM API key from the .env file in the working
// directory.
func GooglePaLM() (string, error) {
	return Source{}.GooglePaLM()
}

// GooglePaLM reads the Google PaLM API key from this source.
func (s Source) GooglePaLM() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return require(values, ServiceGooglePaLM, keyGooglePaLMAPIKey)
}
