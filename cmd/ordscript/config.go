package main

import (
	"encoding/json"
	"fmt"

	"github.com/ModChain/ordscript"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel           int
	Network            string
	MaxInscriptionSize int
}

func (c *Config) String() string {
	json, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(json)
}

var (
	LogLevel           = "LOG_LEVEL"
	Network            = "NETWORK"
	MaxInscriptionSize = "MAX_INSCRIPTION_SIZE"

	defaultLogLevel           = 4
	defaultNetwork            = "bitcoin"
	defaultMaxInscriptionSize = ordscript.DefaultMaxInscriptionSize
)

func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix("ORDSCRIPT")
	viper.AutomaticEnv()

	viper.SetDefault(LogLevel, defaultLogLevel)
	viper.SetDefault(Network, defaultNetwork)
	viper.SetDefault(MaxInscriptionSize, defaultMaxInscriptionSize)

	cfg := &Config{
		LogLevel:           viper.GetInt(LogLevel),
		Network:            viper.GetString(Network),
		MaxInscriptionSize: viper.GetInt(MaxInscriptionSize),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !ordscript.SupportedNetwork(c.Network) {
		return fmt.Errorf("unsupported network %s", c.Network)
	}
	if c.MaxInscriptionSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", MaxInscriptionSize, c.MaxInscriptionSize)
	}
	if c.LogLevel < 0 || c.LogLevel > 6 {
		return fmt.Errorf("%s must be between 0 and 6, got %d", LogLevel, c.LogLevel)
	}
	return nil
}

func (c *Config) builder() *ordscript.Builder {
	return &ordscript.Builder{MaxInscriptionSize: c.MaxInscriptionSize}
}
