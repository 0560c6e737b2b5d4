package settings

// Service names, as they appear in Services output and in
// MissingConfigurationError.
const (
	ServiceOpenAI        = "OpenAI"
	ServiceAzureOpenAI   = "Azure OpenAI"
	ServicePostgres      = "Postgres"
	ServicePinecone      = "Pinecone"
	ServiceAstraDB       = "AstraDB"
	ServiceWeaviate      = "Weaviate"
	ServiceBingSearch    = "Bing Search"
	ServiceMongoDBAtlas  = "MongoDB Atlas"
	ServiceGooglePaLM    = "Google PaLM"
	ServiceAzureCosmosDB = "Azure CosmosDB"
	ServiceRedis         = "Redis"
	ServiceAzureAISearch = "Azure AI Search"
	ServiceAzureKeyVault = "Azure Key Vault"
	ServiceBookingSample = "Booking Sample"
)

// Service describes one supported integration: its name, the keys its
// default accessor requires, and the optional keys it reads when present.
type Service struct {
	Name     string
	Required []string
	Optional []string

	probe func(Source) error
}

// Probe calls the service's default accessor against src and reports its
// error, discarding the settings themselves. It lets callers check whether a
// service is fully configured without knowing its accessor.
func (s Service) Probe(src Source) error {
	return s.probe(src)
}

var services = []Service{
	{
		Name:     ServiceOpenAI,
		Required: []string{keyOpenAIAPIKey},
		Optional: []string{keyOpenAIOrgID},
		probe: func(src Source) error {
			_, err := src.OpenAI()
			return err
		},
	},
	{
		Name:     ServiceAzureOpenAI,
		Required: []string{keyAzureOpenAIDeploymentName, keyAzureOpenAIAPIKey, keyAzureOpenAIEndpoint},
		Optional: []string{keyAzureOpenAIAPIVersion},
		probe: func(src Source) error {
			_, err := src.AzureOpenAI()
			return err
		},
	},
	{
		Name:     ServicePostgres,
		Required: []string{keyPostgresConnectionString},
		probe: func(src Source) error {
			_, err := src.Postgres()
			return err
		},
	},
	{
		Name:     ServicePinecone,
		Required: []string{keyPineconeAPIKey, keyPineconeEnvironment},
		probe: func(src Source) error {
			_, err := src.Pinecone()
			return err
		},
	},
	{
		Name:     ServiceAstraDB,
		Required: []string{keyAstraDBAppToken, keyAstraDBID, keyAstraDBRegion, keyAstraDBKeyspace},
		probe: func(src Source) error {
			_, err := src.AstraDB()
			return err
		},
	},
	{
		Name:     ServiceWeaviate,
		Required: []string{keyWeaviateURL},
		Optional: []string{keyWeaviateAPIKey},
		probe: func(src Source) error {
			_, err := src.Weaviate()
			return err
		},
	},
	{
		Name:     ServiceBingSearch,
		Required: []string{keyBingAPIKey},
		probe: func(src Source) error {
			_, err := src.BingSearch()
			return err
		},
	},
	{
		Name:     ServiceMongoDBAtlas,
		Required: []string{keyMongoDBAtlasConnectionString},
		probe: func(src Source) error {
			_, err := src.MongoDBAtlas()
			return err
		},
	},
	{
		Name:     ServiceGooglePaLM,
		Required: []string{keyGooglePaLMAPIKey},
		probe: func(src Source) error {
			_, err := src.GooglePaLM()
			return err
		},
	},
	{
		Name:     ServiceAzureCosmosDB,
		Required: []string{keyAzureCosmosDBConnectionString},
		Optional: []string{keyAzureCosmosDBAPI},
		probe: func(src Source) error {
			_, err := src.AzureCosmosDB()
			return err
		},
	},
	{
		Name:     ServiceRedis,
		Required: []string{keyRedisConnectionString},
		probe: func(src Source) error {
			_, err := src.Redis()
			return err
		},
	},
	{
		Name:     ServiceAzureAISearch,
		Required: []string{keyAzureAISearchAPIKey, keyAzureAISearchURL},
		Optional: []string{keyAzureAISearchIndexName},
		probe: func(src Source) error {
			_, err := src.AzureAISearch()
			return err
		},
	},
	{
		Name:     ServiceAzureKeyVault,
		Required: []string{keyAzureKeyVaultEndpoint, keyAzureKeyVaultClientID, keyAzureKeyVaultClientSecret},
		probe: func(src Source) error {
			_, err := src.AzureKeyVault()
			return err
		},
	},
	{
		Name:     ServiceBookingSample,
		Required: []string{keyBookingSampleClientID, keyBookingSampleTenantID, keyBookingSampleClientSecret},
		probe: func(src Source) error {
			_, err := src.BookingSample()
			return err
		},
	},
}

// Services returns a descriptor for every supported integration, in stable
// order. The returned descriptors hold defensive copies; callers may modify
// them freely.
func Services() []Service {
	out := make([]Service, len(services))
	for i, svc := range services {
		svc.Required = cloneKeys(svc.Required)
		svc.Optional = cloneKeys(svc.Optional)
		out[i] = svc
	}
	return out
}

func cloneKeys(src []string) []string {
	if len(src) == 0 {
		return nil
	}

	out := make([]string, len(src))
	copy(out, src)
	return out
}
