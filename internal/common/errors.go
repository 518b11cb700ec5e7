// Package common contains shared constants, sentinel errors, and small
// helpers used across CryptoFundit client components. Callers should use
// errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Wallet/session errors. None of these are retried automatically.
	ErrNoWalletAvailable = errors.New("no compatible wallet available")
	ErrUserRejected      = errors.New("connection request rejected")
	ErrConnectionFailed  = errors.New("wallet connection failed")

	// Contract interaction errors.
	ErrNotConnected = errors.New("no wallet connected")
	ErrReverted     = errors.New("transaction reverted on-chain")
	ErrNotConfirmed = errors.New("transaction not confirmed")

	// Generic flow control.
	ErrNotFound = errors.New("not found")
)
