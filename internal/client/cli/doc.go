// Package cli implements the interactive CryptoFundit terminal client: a
// read-eval-print loop over the campaign service, wallet session manager,
// and event reconciler.
package cli
