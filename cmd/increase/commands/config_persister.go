package commands

import (
	"sync"

	"github.com/spf13/viper"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateAPIKey stores the API key and its environment in the config file.
func (p *ConfigPersister) UpdateAPIKey(environment, apiKey string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.APIKey = apiKey

	if environment != "" {
		config.Environment = environment
	}

	err := saveConfigStruct(config)
	if err != nil {
		return err
	}

	viper.Set("api_key", config.APIKey)
	viper.Set("environment", config.Environment)

	return nil
}
