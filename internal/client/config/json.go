package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cryptofundit/cryptofundit-go/internal/flagx"
	"github.com/cryptofundit/cryptofundit-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	RPCEndpoint       string         `json:"rpc_endpoint"`
	WSEndpoint        string         `json:"ws_endpoint"`
	ContractAddress   string         `json:"contract_address"`
	ChainID           int64          `json:"chain_id"`
	DeploymentBlock   uint64         `json:"deployment_block"`
	ChunkSize         uint64         `json:"chunk_size"`
	KeystoreDir       string         `json:"keystore_dir"`
	WalletRPCEndpoint string         `json:"wallet_rpc_endpoint"`
	SessionFile       string         `json:"session_file"`
	PinEndpoint       string         `json:"pin_endpoint"`
	PinGateway        string         `json:"pin_gateway"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c/-config flag. Empty JSON fields leave the existing value alone.
// Panics on read or unmarshal errors; the file was explicitly requested,
// so a broken one should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RPCEndpoint != "" {
		cfg.RPCEndpoint = jc.RPCEndpoint
	}
	if jc.WSEndpoint != "" {
		cfg.WSEndpoint = jc.WSEndpoint
	}
	if jc.ContractAddress != "" {
		cfg.ContractAddress = jc.ContractAddress
	}
	if jc.ChainID != 0 {
		cfg.ChainID = jc.ChainID
	}
	if jc.DeploymentBlock != 0 {
		cfg.DeploymentBlock = jc.DeploymentBlock
	}
	if jc.ChunkSize != 0 {
		cfg.ChunkSize = jc.ChunkSize
	}
	if jc.KeystoreDir != "" {
		cfg.KeystoreDir = jc.KeystoreDir
	}
	if jc.WalletRPCEndpoint != "" {
		cfg.WalletRPCEndpoint = jc.WalletRPCEndpoint
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.PinEndpoint != "" {
		cfg.PinEndpoint = jc.PinEndpoint
	}
	if jc.PinGateway != "" {
		cfg.PinGateway = jc.PinGateway
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
