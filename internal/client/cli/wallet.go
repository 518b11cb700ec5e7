package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cryptofundit/cryptofundit-go/internal/buildinfo"
	"github.com/cryptofundit/cryptofundit-go/internal/client/session"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

// Connect establishes a wallet session through the named backend. With no
// argument the local keystore is used.
func (a *App) Connect(ctx context.Context, backend string) error {
	if a.isConnected() {
		printlnFn("Already connected. Use 'disconnect' first to switch accounts.")
		return nil
	}
	if backend == "" {
		backend = session.KindKeystore
	}

	s, err := a.session.Connect(ctx, backend)
	if err != nil {
		switch {
		case errors.Is(err, appcommon.ErrNoWalletAvailable):
			printlnFn("No account available in this backend. Add a key to the keystore directory or start your wallet node.")
		case errors.Is(err, appcommon.ErrUserRejected):
			printlnFn("Connection request was rejected.")
		}
		return err
	}

	printlnFn("Connected as " + s.Address.Hex())
	if s.Balance != nil {
		printlnFn("Balance: " + appcommon.FormatEther(s.Balance) + " AVAX")
	}
	return nil
}

// Disconnect drops the wallet session and its stored hints.
func (a *App) Disconnect(ctx context.Context) error {
	if !a.isConnected() {
		printlnFn("No wallet connected.")
		return nil
	}
	a.session.Disconnect(ctx)
	printlnFn("Disconnected.")
	return nil
}

// Wallet shows the connected account with a fresh balance.
func (a *App) Wallet(ctx context.Context) error {
	current := a.session.Current()
	if current == nil {
		printlnFn("No wallet connected. Use 'connect' first.")
		return nil
	}

	printlnFn("Account: " + current.Address.Hex())
	printlnFn("Backend: " + current.Backend)

	balance, err := a.session.RefreshBalance(ctx)
	if err != nil {
		return fmt.Errorf("refresh balance: %w", err)
	}
	printlnFn("Balance: " + appcommon.FormatEther(balance) + " AVAX")

	admin, err := a.campaigns.IsAdmin(ctx, current.Address)
	if err == nil && admin {
		printlnFn("This account is the contract owner.")
	}
	return nil
}

const howToText = `How donating works:
  1. Get testnet AVAX from the Fuji faucet (https://faucet.avax.network/).
  2. 'connect' a wallet. The keystore backend reads keys from the keystore
     directory; 'connect walletrpc' delegates signing to your wallet node.
  3. Find a campaign with 'list' or 'search', inspect it with 'show <id>'.
  4. 'donate <id> <amount>' sends the amount in AVAX with the transaction.
  5. The command waits for on-chain confirmation and prints an explorer
     link. 'watch <id>' follows the campaign's events live.`

// HowTo explains the donation flow.
func (a *App) HowTo(ctx context.Context) error {
	printlnFn(howToText)
	return nil
}

// About prints build information and the deployment coordinates.
func (a *App) About(ctx context.Context) error {
	buildinfo.PrintBuildData(os.Stdout)
	printlnFn("Contract: " + a.config.ContractAddress)
	printlnFn("Network:  Avalanche Fuji (chain id " + fmt.Sprint(a.config.ChainID) + ")")
	return nil
}
