package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadServerConfig_Success(t *testing.T) {
	path := writeTemp(t, "server.yaml", "addr: \":9090\"\n"+
		"site_title: \"EEI\"\n"+
		"read_timeout: 5s\n"+
		"rate_limit:\n"+
		"  requests: 10\n"+
		"  window: 30s\n")

	cfg, err := NewInputParser().LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "EEI", cfg.SiteTitle)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadServerConfig_Disclaimers(t *testing.T) {
	path := writeTemp(t, "server.yaml", "disclaimers:\n"+
		"  franchise: \"Figures exclude GST.\"\n")

	cfg, err := NewInputParser().LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Figures exclude GST.", cfg.Disclaimers.Franchise)
	assert.Empty(t, cfg.Disclaimers.Investor)
	assert.Empty(t, DefaultServerConfig().Disclaimers)
}

func TestLoadServerConfig_FileNotFound(t *testing.T) {
	cfg, err := NewInputParser().LoadServerConfig("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadServerConfig_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "bad.yaml", "addr: [unclosed\n")
	_, err := NewInputParser().LoadServerConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateServerConfig(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateServerConfig(DefaultServerConfig()))

	cfg := DefaultServerConfig()
	cfg.Addr = " "
	assert.Error(t, parser.ValidateServerConfig(cfg))

	cfg = DefaultServerConfig()
	cfg.ReadTimeout = 0
	assert.Error(t, parser.ValidateServerConfig(cfg))

	cfg = DefaultServerConfig()
	cfg.RateLimit.Window = 0
	assert.Error(t, parser.ValidateServerConfig(cfg))

	cfg.RateLimit.Requests = 0
	assert.NoError(t, parser.ValidateServerConfig(cfg))
}

func TestLoadFieldsFromFile(t *testing.T) {
	path := writeTemp(t, "inputs.yaml", "vehicleCost: 1000000\n"+
		"loanRate: 10\n"+
		"topupRate: 5.5\n"+
		"years: \"5\"\n"+
		"taxRate:\n")

	fields, err := NewInputParser().LoadFieldsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1000000", fields[FieldVehicleCost])
	assert.Equal(t, "10", fields[FieldLoanRate])
	assert.Equal(t, "5.5", fields[FieldTopupRate])
	assert.Equal(t, "5", fields[FieldYears])
	v, ok := fields.Lookup(FieldTaxRate)
	assert.True(t, ok)
	assert.Equal(t, "", v)

	in, ok := CollectFranchise(fields)
	assert.True(t, ok)
	assert.Equal(t, 5, in.Years)
}

func TestLoadFieldsFromFile_RejectsNested(t *testing.T) {
	path := writeTemp(t, "nested.yaml", "vehicleCost:\n  amount: 5\n")
	_, err := NewInputParser().LoadFieldsFromFile(path)
	assert.Error(t, err)
}
