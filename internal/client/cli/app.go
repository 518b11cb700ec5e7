package cli

import (
	"bufio"
	"context"
	"fmt"
	"math/big"
	"os"
	"sync"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/cryptofundit/cryptofundit-go/internal/client/chain"
	"github.com/cryptofundit/cryptofundit-go/internal/client/config"
	"github.com/cryptofundit/cryptofundit-go/internal/client/events"
	"github.com/cryptofundit/cryptofundit-go/internal/client/pinning"
	"github.com/cryptofundit/cryptofundit-go/internal/client/services"
	"github.com/cryptofundit/cryptofundit-go/internal/client/session"
	"github.com/cryptofundit/cryptofundit-go/internal/client/store"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// App wires the campaign service, session manager, and event reconciler
// behind the interactive command loop.
type App struct {
	config     *config.Config
	campaigns  *services.Campaigns
	session    *session.Manager
	reconciler *events.Reconciler
	pinner     *pinning.Client
	log        logging.Logger
	reader     *bufio.Reader

	mu      sync.Mutex
	watched *events.Subscription
}

// NewApp connects to the chain endpoints and assembles the application.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	rpcClient, err := ethclient.DialContext(ctx, c.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint: %w", err)
	}

	// live subscriptions need the websocket transport; without it the app
	// still works, minus the push stream
	subClient := rpcClient
	if wsClient, err := ethclient.DialContext(ctx, c.WSEndpoint); err == nil {
		subClient = wsClient
	} else {
		log.Warn(ctx, "websocket endpoint unavailable, live events disabled", "error", err)
	}

	contractAddr := gethcommon.HexToAddress(c.ContractAddress)
	facade := chain.NewFacade(rpcClient, contractAddr, log)

	backends := []session.Backend{
		session.NewKeystoreBackend(c.KeystoreDir, big.NewInt(c.ChainID)),
	}
	if c.WalletRPCEndpoint != "" {
		backends = append(backends, session.NewWalletRPCBackend(c.WalletRPCEndpoint))
	}

	manager := session.NewManager(store.NewFileStore(c.SessionFile), facade, rpcClient, log, backends...)

	signer := func() (services.Writer, error) {
		w, err := facade.Signer()
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	return &App{
		config:     c,
		campaigns:  services.NewCampaigns(facade.Reader(), signer, log),
		session:    manager,
		reconciler: events.NewReconciler(subClient, facade.Parser(), c.DeploymentBlock, c.ChunkSize, log),
		pinner:     pinning.New(c.PinEndpoint, c.PinGateway, c.PinToken),
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the previous wallet session, if any, and enters the command
// loop.
func (a *App) Run(ctx context.Context) {
	if s := a.session.RestoreOnLoad(ctx); s != nil {
		printlnFn("Reconnected as " + s.Address.Hex())
	}
	// the session stays connected across runs; only an explicit
	// disconnect clears the stored hints
	defer func() { _ = a.Unwatch(ctx) }()

	a.Root(ctx)
}

func (a *App) isConnected() bool {
	return a.session.Current() != nil
}
