package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<API REQUEST_DUMP="true">
    <CONTEXT>
        <PORT>9090</PORT>
        <HOST>127.0.0.1</HOST>
        <LOG_DIR>logs</LOG_DIR>
        <TIME_ZONE>UTC</TIME_ZONE>
    </CONTEXT>
    <DB>
        <HOST>localhost</HOST>
        <PORT>5432</PORT>
        <NAME>intervia</NAME>
        <SSL_MODE>disable</SSL_MODE>
        <USERNAME>intervia</USERNAME>
        <PASSWORD>${TEST_DB_PASSWORD}</PASSWORD>
    </DB>
    <LLM>
        <PROVIDER>gemini</PROVIDER>
        <MODEL>gemini-2.0-flash</MODEL>
        <API_KEY>${TEST_LLM_KEY}</API_KEY>
        <GENERATION_TEMPERATURE>0.8</GENERATION_TEMPERATURE>
        <EVALUATION_TEMPERATURE>0.3</EVALUATION_TEMPERATURE>
    </LLM>
    <IDENTITY>
        <WEBHOOK_SECRET>whsec</WEBHOOK_SECRET>
    </IDENTITY>
</API>`

func TestParseConfig(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "hunter2")
	t.Setenv("TEST_LLM_KEY", "sk-test")

	cfg, err := ParseConfig([]byte(sampleXML))
	require.NoError(t, err)

	assert.True(t, cfg.RequestDump)
	assert.Equal(t, 9090, cfg.Context.Port)
	assert.Equal(t, "127.0.0.1", cfg.Context.Host)

	// Environment references expand, literals pass through.
	assert.Equal(t, "hunter2", cfg.DB.Password)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "whsec", cfg.Identity.WebhookSecret)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.InDelta(t, 0.8, cfg.LLM.GenerationTemperature, 0.001)
	assert.InDelta(t, 0.3, cfg.LLM.EvaluationTemperature, 0.001)
}

func TestParseConfigRejectsBadXML(t *testing.T) {
	_, err := ParseConfig([]byte("{not xml}"))
	assert.Error(t, err)
}
