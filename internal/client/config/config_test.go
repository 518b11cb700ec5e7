package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, DefaultRPCEndpoint, cfg.RPCEndpoint)
	assert.Equal(t, DefaultContractAddress, cfg.ContractAddress)
	assert.Equal(t, int64(43113), cfg.ChainID)
	assert.Equal(t, uint64(37388313), cfg.DeploymentBlock)
	assert.Equal(t, uint64(2000), cfg.ChunkSize)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"rpc_endpoint": "http://localhost:9650/ext/bc/C/rpc",
		"chunk_size": 500,
		"request_timeout": "10s"
	}`), 0o600))

	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:9650/ext/bc/C/rpc", cfg.RPCEndpoint)
	assert.Equal(t, uint64(500), cfg.ChunkSize)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)

	// untouched fields keep their defaults
	assert.Equal(t, DefaultContractAddress, cfg.ContractAddress)
	assert.Equal(t, uint64(37388313), cfg.DeploymentBlock)
}

func TestParseFlags(t *testing.T) {
	os.Args = []string{"cli", "-r", "http://localhost:8545", "-k", "/tmp/keys", "-unrelated", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://localhost:8545", cfg.RPCEndpoint)
	assert.Equal(t, "/tmp/keys", cfg.KeystoreDir)
	assert.Equal(t, DefaultWSEndpoint, cfg.WSEndpoint)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PINATA_JWT", "secret-token")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "secret-token", cfg.PinToken)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rpc_endpoint": "http://from-json"}`), 0o600))

	// flags beat JSON
	os.Args = []string{"cli", "-c", path, "-r", "http://from-flag"}

	cfg := LoadConfig()
	assert.Equal(t, "http://from-flag", cfg.RPCEndpoint)
}
