package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Donation is one contribution as enumerated by getDonators. Order is
// whatever the contract returns (treated as insertion order).
type Donation struct {
	Donator common.Address
	Amount  *big.Int // wei
}
