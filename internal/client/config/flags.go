package config

import (
	"flag"
	"os"

	"github.com/cryptofundit/cryptofundit-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   HTTP JSON-RPC endpoint
//	-w string   WebSocket endpoint for live subscriptions
//	-t string   contract address
//	-k string   keystore directory
//	-n string   wallet node JSON-RPC endpoint
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-w", "-t", "-k", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RPCEndpoint, "r", cfg.RPCEndpoint, "HTTP JSON-RPC endpoint")
	fs.StringVar(&cfg.WSEndpoint, "w", cfg.WSEndpoint, "WebSocket endpoint for live subscriptions")
	fs.StringVar(&cfg.ContractAddress, "t", cfg.ContractAddress, "CryptoFundit contract address")
	fs.StringVar(&cfg.KeystoreDir, "k", cfg.KeystoreDir, "keystore directory")
	fs.StringVar(&cfg.WalletRPCEndpoint, "n", cfg.WalletRPCEndpoint, "wallet node JSON-RPC endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
