// Package config loads runtime configuration for the quotation service.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		// PublicURL is the externally reachable base URL used to build
		// document links handed to the messaging API.
		PublicURL string `mapstructure:"public_url"`
	} `mapstructure:"app"`

	Pricing struct {
		// TaxRate is threaded through every computation and persisted
		// with each record; it is never hard-coded elsewhere.
		TaxRate  float64 `mapstructure:"tax_rate"`
		Currency string  `mapstructure:"currency"`
	} `mapstructure:"pricing"`

	WhatsApp struct {
		APIURL      string `mapstructure:"api_url"`
		APIKey      string `mapstructure:"api_key"`
		SenderPhone string `mapstructure:"sender_phone"`
		Template    string `mapstructure:"template"`
		MaxAttempts int    `mapstructure:"max_attempts"`
	} `mapstructure:"whatsapp"`
}

// Load reads configuration from an optional file, with SOLAR_* environment
// variables taking precedence (e.g. SOLAR_WHATSAPP_API_KEY).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.public_url", "http://localhost:8090")
	v.SetDefault("pricing.tax_rate", 0.089)
	v.SetDefault("pricing.currency", "INR")
	v.SetDefault("whatsapp.api_url", "")
	v.SetDefault("whatsapp.api_key", "")
	v.SetDefault("whatsapp.sender_phone", "")
	v.SetDefault("whatsapp.template", "quotation_document")
	v.SetDefault("whatsapp.max_attempts", 3)

	v.SetEnvPrefix("SOLAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
