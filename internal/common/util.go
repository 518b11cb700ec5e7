package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// FormatEther renders a wei amount as a decimal AVAX string with trailing
// zeros trimmed, e.g. 1500000000000000000 -> "1.5".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	sign := ""
	w := new(big.Int).Set(wei)
	if w.Sign() < 0 {
		sign = "-"
		w.Neg(w)
	}

	q, r := new(big.Int).QuoRem(w, big.NewInt(params.Ether), new(big.Int))
	if r.Sign() == 0 {
		return sign + q.String()
	}

	frac := strings.TrimRight(fmt.Sprintf("%018s", r.String()), "0")
	return sign + q.String() + "." + frac
}

// ParseEther converts a decimal AVAX string (e.g. "0.25") into wei.
// At most 18 fractional digits are accepted.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		return nil, fmt.Errorf("negative amount %q", s)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 18 {
		return nil, fmt.Errorf("amount %q has more than 18 fractional digits", s)
	}

	wei, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	wei.Mul(wei, big.NewInt(params.Ether))

	if fracPart != "" {
		frac, ok := new(big.Int).SetString(fracPart+strings.Repeat("0", 18-len(fracPart)), 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		wei.Add(wei, frac)
	}

	return wei, nil
}

// ShortenAddress abbreviates a hex address for display: 0x1234...abcd.
func ShortenAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
