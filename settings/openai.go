package settings

const (
	keyOpenAIAPIKey = "OPENAI_API_KEY"
	keyOpenAIOrgID  = "OPENAI_ORG_ID"

	keyAzureOpenAIDeploymentName = "AZURE_OPENAI_DEPLOYMENT_NAME"
	keyAzureOpenAIAPIKey         = "AZURE_OPENAI_API_KEY"
	keyAzureOpenAIEndpoint       = "AZURE_OPENAI_ENDPOINT"
	keyAzureOpenAIAPIVersion     = "AZURE_OPENAI_API_VERSION"
)

// OpenAISettings is the credential bundle for the OpenAI API.
type OpenAISettings struct {
	APIKey string
	// OrgID is empty when OPENAI_ORG_ID is not set; the organization ID is
	// never required.
	OrgID string
}

// AzureOpenAISettings is the credential bundle for an Azure OpenAI resource.
type AzureOpenAISettings struct {
	// DeploymentName holds whatever value the file provides, even when the
	// deployment requirement has been lifted with WithoutDeploymentName.
	DeploymentName string
	APIKey         string
	Endpoint       string
	// APIVersion is populated only when requested with WithAPIVersion.
	APIVersion string
}

// AzureOpenAIOption adjusts which Azure OpenAI keys are required and returned.
type AzureOpenAIOption func(*azureOpenAIConfig)

type azureOpenAIConfig struct {
	requireDeployment bool
	includeAPIVersion bool
}

// WithoutDeploymentName lifts the requirement on AZURE_OPENAI_DEPLOYMENT_NAME.
// The deployment name is required by default because most Azure OpenAI calls
// need one.
func WithoutDeploymentName() AzureOpenAIOption {
	return func(c *azureOpenAIConfig) {
		c.requireDeployment = false
	}
}

// WithAPIVersion requires AZURE_OPENAI_API_VERSION and includes it in the
// result.
func WithAPIVersion() AzureOpenAIOption {
	return func(c *azureOpenAIConfig) {
		c.includeAPIVersion = true
	}
}

// OpenAI reads the OpenAI API key and organization ID from the .env file in
// the working directory.
func OpenAI() (OpenAISettings, error) {
	return Source{}.OpenAI()
}

// OpenAI reads the OpenAI API key and organization ID from this source.
func (s Source) OpenAI() (OpenAISettings, error) {
	values, err := s.read()
	if err != nil {
		return OpenAISettings{}, err
	}

	apiKey, err := require(values, ServiceOpenAI, keyOpenAIAPIKey)
	if err != nil {
		return OpenAISettings{}, err
	}

	return OpenAISettings{
		APIKey: apiKey,
		OrgID:  values[keyOpenAIOrgID],
	}, nil
}

// AzureOpenAI reads the Azure OpenAI deployment name, API key, endpoint, and
// optionally API version from the .env file in the working directory.
func AzureOpenAI(opts ...AzureOpenAIOption) (AzureOpenAISettings, error) {
	return Source{}.AzureOpenAI(opts...)
}

// AzureOpenAI reads the Azure OpenAI credential bundle from this source.
func (s Source) AzureOpenAI(opts ...AzureOpenAIOption) (AzureOpenAISettings, error) {
	cfg := azureOpenAIConfig{requireDeployment: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	values, err := s.read()
	if err != nil {
		return AzureOpenAISettings{}, err
	}

	if cfg.requireDeployment {
		if _, err := require(values, ServiceAzureOpenAI, keyAzureOpenAIDeploymentName); err != nil {
			return AzureOpenAISettings{}, err
		}
	}
	apiKey, err := require(values, ServiceAzureOpenAI, keyAzureOpenAIAPIKey)
	if err != nil {
		return AzureOpenAISettings{}, err
	}
	endpoint, err := require(values, ServiceAzureOpenAI, keyAzureOpenAIEndpoint)
	if err != nil {
		return AzureOpenAISettings{}, err
	}
	if cfg.includeAPIVersion {
		if _, err := require(values, ServiceAzureOpenAI, keyAzureOpenAIAPIVersion); err != nil {
			return AzureOpenAISettings{}, err
		}
	}

	out := AzureOpenAISettings{
		DeploymentName: values[keyAzureOpenAIDeploymentName],
		APIKey:         apiKey,
		Endpoint:       endpoint,
	}
	if cfg.includeAPIVersion {
		out.APIVersion = values[keyAzureOpenAIAPIVersion]
	}
	return out, nil
}

// AzureOpenAIMap is the mapping form of AzureOpenAI. The api_key and endpoint
// keys are always present; deployment_name and api_version appear according
// to the same options AzureOpenAI takes.
func AzureOpenAIMap(opts ...AzureOpenAIOption) (map[string]string, error) {
	return Source{}.AzureOpenAIMap(opts...)
}

// AzureOpenAIMap is the mapping form of Source.AzureOpenAI.
func (s Source) AzureOpenAIMap(opts ...AzureOpenAIOption) (map[string]string, error) {
	cfg := azureOpenAIConfig{requireDeployment: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	bundle, err := s.AzureOpenAI(opts...)
	if err != nil {
		return nil, err
	}

	out := map[string]string{
		"api_key":  bundle.APIKey,
		"endpoint": bundle.Endpoint,
	}
	if cfg.requireDeployment {
		out["deployment_name"] = bundle.DeploymentName
	}
	if cfg.includeAPIVersion {
		out["api_version"] = bundle.APIVersion
	}
	return out, nil
}
