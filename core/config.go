package core

import "os"

// ProviderConfig holds the connection parameters of the remote identity
// provider. An incomplete config forces mock mode for the whole process.
type ProviderConfig struct {
	APIKey        string
	AuthDomain    string
	ProjectID     string
	StorageBucket string
	AppID         string
}

// Complete reports whether the required connection parameters are present.
func (c *ProviderConfig) Complete() bool {
	return c != nil && c.APIKey != "" && c.AuthDomain != "" && c.ProjectID != ""
}

// ProviderConfigFromEnv reads the provider connection parameters from the
// environment. Missing variables are left empty, which fails Complete().
func ProviderConfigFromEnv() *ProviderConfig {
	return &ProviderConfig{
		APIKey:        os.Getenv("PROVIDER_API_KEY"),
		AuthDomain:    os.Getenv("PROVIDER_AUTH_DOMAIN"),
		ProjectID:     os.Getenv("PROVIDER_PROJECT_ID"),
		StorageBucket: os.Getenv("PROVIDER_STORAGE_BUCKET"),
		AppID:         os.Getenv("PROVIDER_APP_ID"),
	}
}
