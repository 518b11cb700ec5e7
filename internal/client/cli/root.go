package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cryptofundit/cryptofundit-go/internal/common"
)

func (a *App) getStatus() string {
	s := "(not connected)"
	if current := a.session.Current(); current != nil {
		s = fmt.Sprintf("(%s)", common.ShortenAddress(current.Address.Hex()))
	}
	return s + " >"
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to CryptoFundit CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
