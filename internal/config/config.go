package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	DB             DBConfig             `xml:"DB"`
	LLM            LLMConfig            `xml:"LLM"`
	Identity       IdentityConfig       `xml:"IDENTITY"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	LogDir   string `xml:"LOG_DIR"`
	TimeZone string `xml:"TIME_ZONE"`
}

// AuthenticationConfig holds token settings.
type AuthenticationConfig struct {
	AccessSecret  string `xml:"ACCESS_SECRET"`
	RefreshSecret string `xml:"REFRESH_SECRET"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Host     string       `xml:"HOST"`
	Port     int          `xml:"PORT"`
	Name     string       `xml:"NAME"`
	SSLMode  string       `xml:"SSL_MODE"`
	Username string       `xml:"USERNAME"`
	Password string       `xml:"PASSWORD"`
	Pool     DBPoolConfig `xml:"POOL"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LLMConfig holds completion-service settings. Generation runs at a higher
// temperature than evaluation so questions vary while scoring stays stable.
type LLMConfig struct {
	Provider              string  `xml:"PROVIDER"` // gemini or ollama
	Model                 string  `xml:"MODEL"`
	APIKey                string  `xml:"API_KEY"`
	OllamaURL             string  `xml:"OLLAMA_URL"`
	GenerationTemperature float64 `xml:"GENERATION_TEMPERATURE"`
	EvaluationTemperature float64 `xml:"EVALUATION_TEMPERATURE"`
}

// IdentityConfig holds identity-provider webhook settings.
type IdentityConfig struct {
	WebhookSecret string `xml:"WEBHOOK_SECRET"`
}

// LoadConfig loads and parses the XML configuration from the given file.
// ${VAR} references in the file expand from the environment so secrets can
// stay out of the XML.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	var loadErr error
	once.Do(func() {
		data, err := os.ReadFile(xmlPath)
		if err != nil {
			loadErr = err
			return
		}
		newCfg, err := ParseConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = newCfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration was not loaded")
	}
	return cfg, nil
}

// ParseConfig expands environment references and unmarshals the XML body.
func ParseConfig(data []byte) (*APIConfig, error) {
	expanded := os.ExpandEnv(string(data))

	var newCfg APIConfig
	if err := xml.Unmarshal([]byte(expanded), &newCfg); err != nil {
		return nil, fmt.Errorf("invalid config XML: %w", err)
	}
	return &newCfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
