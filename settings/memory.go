package settings

const (
	keyPostgresConnectionString = "POSTGRES_CONNECTION_STRING"

	keyPineconeAPIKey      = "PINECONE_API_KEY"
	keyPineconeEnvironment = "PINECONE_ENVIRONMENT"

	keyAstraDBAppToken = "ASTRADB_APP_TOKEN"
	keyAstraDBID       = "ASTRADB_ID"
	keyAstraDBRegion   = "ASTRADB_REGION"
	keyAstraDBKeyspace = "ASTRADB_KEYSPACE"

	keyWeaviateAPIKey = "WEAVIATE_API_KEY"
	keyWeaviateURL    = "WEAVIATE_URL"

	keyMongoDBAtlasConnectionString = "MONGODB_ATLAS_CONNECTION_STRING"

	keyAzureCosmosDBAPI              = "AZCOSMOS_API"
	keyAzureCosmosDBConnectionString = "AZCOSMOS_CONNSTR"

	keyRedisConnectionString = "REDIS_CONNECTION_STRING"
)

// PineconeSettings is the credential bundle for a Pinecone project.
type PineconeSettings struct {
	APIKey      string
	Environment string
}

// AstraDBSettings is the credential bundle for an Astra DB database.
type AstraDBSettings struct {
	AppToken   string
	DatabaseID string
	Region     string
	Keyspace   string
}

// WeaviateSettings is the credential bundle for a Weaviate instance.
type WeaviateSettings struct {
	// APIKey is empty for anonymous deployments; WEAVIATE_API_KEY is never
	// required.
	APIKey string
	URL    string
}

// AzureCosmosDBSettings is the credential bundle for an Azure Cosmos DB
// account.
type AzureCosmosDBSettings struct {
	// API is empty when AZCOSMOS_API is not set; the API kind is never
	// required.
	API              string
	ConnectionString string
}

// Postgres reads the Postgres connection string from the .env file in the
// working directory.
func Postgres() (string, error) {
	return Source{}.Postgres()
}

// Postgres reads the Postgres connection string from this source.
func (s Source) Postgres() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return require(values, ServicePostgres, keyPostgresConnectionString)
}

// Pinecone reads the Pinecone API key and environment from the .env file in
// the working directory.
func Pinecone() (PineconeSettings, error) {
	return Source{}.Pinecone()
}

// Pinecone reads the Pinecone API key and environment from this source.
func (s Source) Pinecone() (PineconeSettings, error) {
	values, err := s.read()
	if err != nil {
		return PineconeSettings{}, err
	}

	apiKey, err := require(values, ServicePinecone, keyPineconeAPIKey)
	if err != nil {
		return PineconeSettings{}, err
	}
	environment, err := require(values, ServicePinecone, keyPineconeEnvironment)
	if err != nil {
		return PineconeSettings{}, err
	}

	return PineconeSettings{
		APIKey:      apiKey,
		Environment: environment,
	}, nil
}

// AstraDB reads the Astra DB application token, database ID, region, and
// keyspace from the .env file in the working directory.
func AstraDB() (AstraDBSettings, error) {
	return Source{}.AstraDB()
}

// AstraDB reads the Astra DB credential bundle from this source.
func (s Source) AstraDB() (AstraDBSettings, error) {
	values, err := s.read()
	if err != nil {
		return AstraDBSettings{}, err
	}

	appToken, err := require(values, ServiceAstraDB, keyAstraDBAppToken)
	if err != nil {
		return AstraDBSettings{}, err
	}
	databaseID, err := require(values, ServiceAstraDB, keyAstraDBID)
	if err != nil {
		return AstraDBSettings{}, err
	}
	region, err := require(values, ServiceAstraDB, keyAstraDBRegion)
	if err != nil {
		return AstraDBSettings{}, err
	}
	keyspace, err := require(values, ServiceAstraDB, keyAstraDBKeyspace)
	if err != nil {
		return AstraDBSettings{}, err
	}

	return AstraDBSettings{
		AppToken:   appToken,
		DatabaseID: databaseID,
		Region:     region,
		Keyspace:   keyspace,
	}, nil
}

// Weaviate reads the Weaviate URL and optional API key from the .env file in
// the working directory.
func Weaviate() (WeaviateSettings, error) {
	return Source{}.Weaviate()
}

// Weaviate reads the Weaviate URL and optional API key from this source.
func (s Source) Weaviate() (WeaviateSettings, error) {
	values, err := s.read()
	if err != nil {
		return WeaviateSettings{}, err
	}

	url, err := require(values, ServiceWeaviate, keyWeaviateURL)
	if err != nil {
		return WeaviateSettings{}, err
	}

	return WeaviateSettings{
		APIKey: values[keyWeaviateAPIKey],
		URL:    url,
	}, nil
}

// MongoDBAtlas reads the MongoDB Atlas connection string from the .env file
// in the working directory.
func MongoDBAtlas() (string, error) {
	return Source{}.MongoDBAtlas()
}

// MongoDBAtlas reads the MongoDB Atlas connection string from this source.
func (s Source) MongoDBAtlas() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return require(values, ServiceMongoDBAtlas, keyMongoDBAtlasConnectionString)
}

// AzureCosmosDB reads the Azure Cosmos DB connection string and optional API
// kind from the .env file in the working directory.
func AzureCosmosDB() (AzureCosmosDBSettings, error) {
	return Source{}.AzureCosmosDB()
}

// AzureCosmosDB reads the Azure Cosmos DB credential bundle from this source.
func (s Source) AzureCosmosDB() (AzureCosmosDBSettings, error) {
	values, err := s.read()
	if err != nil {
		return AzureCosmosDBSettings{}, err
	}

	connectionString, err := require(values, ServiceAzureCosmosDB, keyAzureCosmosDBConnectionString)
	if err != nil {
		return AzureCosmosDBSettings{}, err
	}

	return AzureCosmosDBSettings{
		API:              values[keyAzureCosmosDBAPI],
		ConnectionString: connectionString,
	}, nil
}

// Redis reads the Redis connection string from the .env file in the working
// directory.
func Redis() (string, error) {
	return Source{}.Redis()
}

// Redis reads the Redis connection string from this source.
func (s Source) Redis() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return require(values, ServiceRedis, keyRedisConnectionString)
}
