// Package config assembles the CryptoFundit CLI configuration from three
// layers: built-in defaults, an optional JSON file, and command-line
// flags, with later layers overriding earlier ones. Secrets (the pinning
// token) come from the environment only and never appear in flags or
// config files.
package config
