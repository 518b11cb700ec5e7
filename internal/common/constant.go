package common

// ExplorerTxBaseURL is the block-explorer prefix for transaction links on the
// Avalanche Fuji testnet.
const ExplorerTxBaseURL = "https://testnet.snowtrace.io/tx/"

// ExplorerTxURL builds a browsable link for a transaction hash.
func ExplorerTxURL(txHash string) string {
	return ExplorerTxBaseURL + txHash
}
