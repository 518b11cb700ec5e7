package config

import (
	"os"
	"time"
)

// Defaults target the CryptoFundit deployment on the Avalanche Fuji
// testnet.
const (
	DefaultRPCEndpoint     = "https://api.avax-test.network/ext/bc/C/rpc"
	DefaultWSEndpoint      = "wss://api.avax-test.network/ext/bc/C/ws"
	DefaultContractAddress = "0xa8C4d67Bb779d99d97A91c86FA0327A0b1781783"
	DefaultChainID         = 43113
	DefaultDeploymentBlock = 37388313
	DefaultChunkSize       = 2000

	DefaultPinEndpoint = "https://api.pinata.cloud/pinning/pinFileToIPFS"
	DefaultPinGateway  = "https://gateway.pinata.cloud/ipfs/"
)

// Config holds runtime settings for the CryptoFundit CLI.
//
// DeploymentBlock is the block the contract was created in; event backfill
// never queries below it. ChunkSize is the block span of one filtered log
// query, sized for public RPC endpoint limits.
type Config struct {
	RPCEndpoint     string
	WSEndpoint      string
	ContractAddress string
	ChainID         int64
	DeploymentBlock uint64
	ChunkSize       uint64

	KeystoreDir       string
	WalletRPCEndpoint string
	SessionFile       string

	PinEndpoint string
	PinGateway  string
	PinToken    string

	RequestTimeout time.Duration
}

// LoadDefaults populates c with the Fuji testnet defaults.
func (c *Config) LoadDefaults() {
	c.RPCEndpoint = DefaultRPCEndpoint
	c.WSEndpoint = DefaultWSEndpoint
	c.ContractAddress = DefaultContractAddress
	c.ChainID = DefaultChainID
	c.DeploymentBlock = DefaultDeploymentBlock
	c.ChunkSize = DefaultChunkSize
	c.KeystoreDir = "keystore"
	c.SessionFile = "session.json"
	c.PinEndpoint = DefaultPinEndpoint
	c.PinGateway = DefaultPinGateway
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), command-line flags, and the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv overlays the secret material that never travels through flags
// or config files.
func parseEnv(cfg *Config) {
	if token := os.Getenv("PINATA_JWT"); token != "" {
		cfg.PinToken = token
	}
}
