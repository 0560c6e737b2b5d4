package settings

const (
	keyBingAPIKey = "BING_API_KEY"

	keyAzureAISearchAPIKey    = "AZURE_AISEARCH_API_KEY"
	keyAzureAISearchURL       = "AZURE_AISEARCH_URL"
	keyAzureAISearchIndexName = "AZURE_AISEARCH_INDEX_NAME"
)

// AzureAISearchSettings is the credential bundle for an Azure AI Search
// service.
type AzureAISearchSettings struct {
	APIKey string
	URL    string
	// IndexName is populated only when requested with WithIndexName.
	IndexName string
}

// AzureAISearchOption adjusts which Azure AI Search keys are required and
// returned.
type AzureAISearchOption func(*azureAISearchConfig)

type azureAISearchConfig struct {
	includeIndexName bool
}

// WithIndexName requires AZURE_AISEARCH_INDEX_NAME and includes it in the
// result.
func WithIndexName() AzureAISearchOption {
	return func(c *azureAISearchConfig) {
		c.includeIndexName = true
	}
}

// BingSearch reads the Bing Search API key from the .env file in the working
// directory.
func BingSearch() (string, error) {
	return Source{}.BingSearch()
}

// BingSearch reads the Bing Search API key from this source.
func (s Source) BingSearch() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return require(values, ServiceBingSearch, keyBingAPIKey)
}

// AzureAISearch reads the Azure AI Search API key, endpoint URL, and
// optionally index name from the .env file in the working directory.
func AzureAISearch(opts ...AzureAISearchOption) (AzureAISearchSettings, error) {
	return Source{}.AzureAISearch(opts...)
}

// AzureAISearch reads the Azure AI Search credential bundle from this source.
func (s Source) AzureAISearch(opts ...AzureAISearchOption) (AzureAISearchSettings, error) {
	cfg := azureAISearchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	values, err := s.read()
	if err != nil {
		return AzureAISearchSettings{}, err
	}

	url, err := require(values, ServiceAzureAISearch, keyAzureAISearchURL)
	if err != nil {
		return AzureAISearchSettings{}, err
	}
	apiKey, err := require(values, ServiceAzureAISearch, keyAzureAISearchAPIKey)
	if err != nil {
		return AzureAISearchSettings{}, err
	}

	out := AzureAISearchSettings{
		APIKey: apiKey,
		URL:    url,
	}
	if cfg.includeIndexName {
		indexName, err := require(values, ServiceAzureAISearch, keyAzureAISearchIndexName)
		if err != nil {
			return AzureAISearchSettings{}, err
		}
		out.IndexName = indexName
	}
	return out, nil
}

// AzureAISearchMap is the mapping form of AzureAISearch. The index name is
// always required here, and the API key is nested under an authentication
// block in the shape Azure AI Search connector configuration expects:
//
//	{"authentication": {"type": "api_key", "key": ...}, "endpoint": ..., "index_name": ...}
func AzureAISearchMap() (map[string]any, error) {
	return Source{}.AzureAISearchMap()
}

// AzureAISearchMap is the mapping form of Source.AzureAISearch.
func (s Source) AzureAISearchMap() (map[string]any, error) {
	bundle, err := s.AzureAISearch(WithIndexName())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"authentication": map[string]any{
			"type": "api_key",
			"key":  bundle.APIKey,
		},
		"endpoint":   bundle.URL,
		"index_name": bundle.IndexName,
	}, nil
}
