// Package events reconciles the historical and live views of a campaign's
// on-chain activity. Backfill walks the block range from contract deployment
// to the current head in fixed-size chunks, one filtered query per event
// kind per chunk; a push subscription covers everything after the snapshot.
// Both paths land in one deduplicated feed ordered by (block, log index).
package events

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// LogSource is the chain surface the reconciler needs; ethclient.Client
// satisfies it.
type LogSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

// logParser is the slice of the contract event parser the reconciler uses.
type logParser interface {
	FilterQuery(kind models.EventKind, campaignID *big.Int, from, to uint64) ethereum.FilterQuery
	LiveQuery(campaignID *big.Int) ethereum.FilterQuery
	ParseLog(lg types.Log) (*models.Event, error)
}

// Reconciler builds per-campaign event feeds. One reconciler serves the
// whole process; each Watch call owns its own subscription.
type Reconciler struct {
	source      LogSource
	parser      logParser
	deployBlock uint64
	chunk       uint64
	clock       func() time.Time
	log         logging.Logger

	mu   sync.Mutex
	subs map[string]*Subscription
}

// NewReconciler builds a reconciler querying from deployBlock onward in
// chunks of chunkSize blocks.
func NewReconciler(source LogSource, parser logParser, deployBlock, chunkSize uint64, log logging.Logger) *Reconciler {
	return &Reconciler{
		source:      source,
		parser:      parser,
		deployBlock: deployBlock,
		chunk:       chunkSize,
		clock:       time.Now,
		log:         log,
		subs:        make(map[string]*Subscription),
	}
}

// History collects the campaign's full event history up to the current
// head, without opening a live subscription.
func (r *Reconciler) History(ctx context.Context, campaignID *big.Int) ([]*models.Event, error) {
	head, err := r.source.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("read chain head: %w", err)
	}
	return r.Backfill(ctx, campaignID, head)
}

// Backfill collects every historical event of the campaign up to head,
// newest first. The eight event kinds are fetched concurrently; within a
// kind, chunks run oldest to newest so provider rate limits hit a bounded
// window.
func (r *Reconciler) Backfill(ctx context.Context, campaignID *big.Int, head uint64) ([]*models.Event, error) {
	feed := NewFeed()
	if err := r.backfillInto(ctx, feed, campaignID, head); err != nil {
		return nil, err
	}
	return feed.Events(), nil
}

func (r *Reconciler) backfillInto(ctx context.Context, feed *Feed, campaignID *big.Int, head uint64) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, kind := range models.Kinds() {
		g.Go(func() error {
			for start := r.deployBlock; start <= head; start += r.chunk {
				end := start + r.chunk - 1
				if end > head {
					end = head
				}
				logs, err := r.source.FilterLogs(gctx, r.parser.FilterQuery(kind, campaignID, start, end))
				if err != nil {
					return fmt.Errorf("filter %s logs [%d, %d]: %w", kind, start, end, err)
				}
				for _, lg := range logs {
					ev, err := r.parser.ParseLog(lg)
					if err != nil {
						r.log.Warn(gctx, "skipping unparseable log", "tx", lg.TxHash.Hex(), "error", err)
						continue
					}
					feed.Insert(ev)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Subscription is one live view over a campaign's events. Snapshot returns
// the merged feed at any moment; Updates delivers each new live event once.
type Subscription struct {
	id         string
	campaignID *big.Int
	feed       *Feed
	updates    chan *models.Event
	cancel     context.CancelFunc
	done       chan struct{}

	mu       sync.Mutex
	liveOnly bool
	err      error
}

// ID returns the handle's identifier, used with Unsubscribe.
func (s *Subscription) ID() string { return s.id }

// Updates is the live event stream. It closes when the subscription ends.
func (s *Subscription) Updates() <-chan *models.Event { return s.updates }

// Snapshot returns the merged feed, newest first.
func (s *Subscription) Snapshot() []*models.Event { return s.feed.Events() }

// LiveOnly reports whether historical backfill failed, leaving only the
// push stream.
func (s *Subscription) LiveOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveOnly
}

// Err returns the terminal subscription error, if any, once Updates closed.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Watch opens a live subscription for the campaign, then backfills history
// behind it. The push stream starts before the head snapshot is taken, so
// no block can fall between the two views; overlap is absorbed by the
// feed's dedup. A backfill failure degrades the feed to live-only instead
// of failing the watch.
func (r *Reconciler) Watch(ctx context.Context, campaignID *big.Int) (*Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	logs := make(chan types.Log, 128)
	ethSub, err := r.source.SubscribeFilterLogs(subCtx, r.parser.LiveQuery(campaignID), logs)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe campaign %s: %w", campaignID, err)
	}

	sub := &Subscription{
		id:         uuid.NewString(),
		campaignID: new(big.Int).Set(campaignID),
		feed:       NewFeed(),
		updates:    make(chan *models.Event, 64),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	head, err := r.source.BlockNumber(subCtx)
	if err == nil {
		err = r.backfillInto(subCtx, sub.feed, campaignID, head)
	}
	if err != nil {
		r.log.Warn(subCtx, "backfill failed, feed is live-only",
			"campaign", campaignID.String(), "error", err)
		sub.mu.Lock()
		sub.liveOnly = true
		sub.mu.Unlock()
	}

	r.mu.Lock()
	r.subs[sub.id] = sub
	r.mu.Unlock()

	go r.pump(subCtx, sub, ethSub, logs)

	return sub, nil
}

// pump forwards live logs into the feed until the subscription ends.
func (r *Reconciler) pump(ctx context.Context, sub *Subscription, ethSub ethereum.Subscription, logs <-chan types.Log) {
	defer func() {
		ethSub.Unsubscribe()
		close(sub.updates)
		close(sub.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case err := <-ethSub.Err():
			if err != nil {
				sub.mu.Lock()
				sub.err = err
				sub.mu.Unlock()
				r.log.Warn(ctx, "live subscription dropped",
					"campaign", sub.campaignID.String(), "error", err)
			}
			return

		case lg := <-logs:
			ev, err := r.parser.ParseLog(lg)
			if err != nil {
				r.log.Warn(ctx, "skipping unparseable log", "tx", lg.TxHash.Hex(), "error", err)
				continue
			}
			// the topic filter already narrows by campaign; guard anyway
			// against logs arriving after a filter change
			if ev.CampaignID == nil || ev.CampaignID.Cmp(sub.campaignID) != 0 {
				continue
			}
			ev.Live = true
			ev.Received = r.clock()

			if !sub.feed.Insert(ev) {
				continue
			}
			select {
			case sub.updates <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Unsubscribe ends the identified subscription. Unknown ids are a no-op.
func (r *Reconciler) Unsubscribe(id string) {
	r.mu.Lock()
	sub, ok := r.subs[id]
	delete(r.subs, id)
	r.mu.Unlock()

	if !ok {
		return
	}
	sub.cancel()
	<-sub.done
}
