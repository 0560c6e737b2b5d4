package settings

const (
	keyAzureKeyVaultEndpoint     = "AZURE_KEY_VAULT_ENDPOINT"
	keyAzureKeyVaultClientID     = "AZURE_KEY_VAULT_CLIENT_ID"
	keyAzureKeyVaultClientSecret = "AZURE_KEY_VAULT_CLIENT_SECRET"
)

// AzureKeyVaultSettings is the credential bundle for an Azure Key Vault
// service principal.
type AzureKeyVaultSettings struct {
	Endpoint string
	// ClientID is populated unless its requirement was lifted with
	// WithoutClientID.
	ClientID string
	// ClientSecret is populated unless its requirement was lifted with
	// WithoutClientSecret.
	ClientSecret string
}

// AzureKeyVaultOption adjusts which Azure Key Vault keys are required and
// returned.
type AzureKeyVaultOption func(*azureKeyVaultConfig)

type azureKeyVaultConfig struct {
	requireClientID     bool
	requireClientSecret bool
}

// WithoutClientID lifts the requirement on AZURE_KEY_VAULT_CLIENT_ID, for
// callers authenticating through a managed identity.
func WithoutClientID() AzureKeyVaultOption {
	return func(c *azureKeyVaultConfig) {
		c.requireClientID = false
	}
}

// WithoutClientSecret lifts the requirement on AZURE_KEY_VAULT_CLIENT_SECRET.
func WithoutClientSecret() AzureKeyVaultOption {
	return func(c *azureKeyVaultConfig) {
		c.requireClientSecret = false
	}
}

// AzureKeyVault reads the Azure Key Vault endpoint, client ID, and client
// secret from the .env file in the working directory.
func AzureKeyVault(opts ...AzureKeyVaultOption) (AzureKeyVaultSettings, error) {
	return Source{}.AzureKeyVault(opts...)
}

// AzureKeyVault reads the Azure Key Vault credential bundle from this source.
func (s Source) AzureKeyVault(opts ...AzureKeyVaultOption) (AzureKeyVaultSettings, error) {
	cfg := azureKeyVaultConfig{requireClientID: true, requireClientSecret: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	values, err := s.read()
	if err != nil {
		return AzureKeyVaultSettings{}, err
	}

	endpoint, err := require(values, ServiceAzureKeyVault, keyAzureKeyVaultEndpoint)
	if err != nil {
		return AzureKeyVaultSettings{}, err
	}

	out := AzureKeyVaultSettings{Endpoint: endpoint}
	if cfg.requireClientID {
		clientID, err := require(values, ServiceAzureKeyVault, keyAzureKeyVaultClientID)
		if err != nil {
			return AzureKeyVaultSettings{}, err
		}
		out.ClientID = clientID
	}
	if cfg.requireClientSecret {
		clientSecret, err := require(values, ServiceAzureKeyVault, keyAzureKeyVaultClientSecret)
		if err != nil {
			return AzureKeyVaultSettings{}, err
		}
		out.ClientSecret = clientSecret
	}
	return out, nil
}

// AzureKeyVaultMap is the mapping form of AzureKeyVault with all three keys
// required, under the endpoint, client_id, and client_secret names.
func AzureKeyVaultMap() (map[string]string, error) {
	return Source{}.AzureKeyVaultMap()
}

// AzureKeyVaultMap is the mapping form of Source.AzureKeyVault.
func (s Source) AzureKeyVaultMap() (map[string]string, error) {
	bundle, err := s.AzureKeyVault()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"endpoint":      bundle.Endpoint,
		"client_id":     bundle.ClientID,
		"client_secret": bundle.ClientSecret,
	}, nil
}
