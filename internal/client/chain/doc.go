// Package chain wraps the CryptoFundit smart contract behind two handles:
// a read-only handle bound to a fixed RPC endpoint, available at all times,
// and a signer-bound handle that exists only while a wallet session is
// connected. The signer-bound handle is rebuilt wholesale on every connect
// and torn down synchronously on disconnect, so no caller can retain a
// signer bound to a previous account.
package chain
