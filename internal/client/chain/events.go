package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

// eventNames maps feed kinds to the contract's event names.
var eventNames = map[models.EventKind]string{
	models.EventCreated:    "CampaignCreated",
	models.EventDonation:   "DonationReceived",
	models.EventWithdrawal: "FundsWithdrawn",
	models.EventPaused:     "CampaignPaused",
	models.EventResumed:    "CampaignResumed",
	models.EventCompleted:  "CampaignCompleted",
	models.EventUpdated:    "CampaignUpdated",
	models.EventDeleted:    "CampaignDeleted",
}

// Parser turns raw logs of the contract into typed feed events and builds
// the filter queries used for backfill and live subscriptions. The campaign
// id is an indexed argument on every event, so queries are narrowed
// server-side by topic.
type Parser struct {
	address  common.Address
	abi      abi.ABI
	bound    *bind.BoundContract
	kindByID map[common.Hash]models.EventKind
	idByKind map[models.EventKind]common.Hash
}

// NewParser builds a parser for the contract at address.
func NewParser(address common.Address) *Parser {
	contractABI := ContractABI()

	p := &Parser{
		address:  address,
		abi:      contractABI,
		bound:    bind.NewBoundContract(address, contractABI, nil, nil, nil),
		kindByID: make(map[common.Hash]models.EventKind, len(eventNames)),
		idByKind: make(map[models.EventKind]common.Hash, len(eventNames)),
	}
	for kind, name := range eventNames {
		id := contractABI.Events[name].ID
		p.kindByID[id] = kind
		p.idByKind[kind] = id
	}
	return p
}

// FilterQuery builds a historical log query for one event kind of one
// campaign over [from, to] inclusive.
func (p *Parser) FilterQuery(kind models.EventKind, campaignID *big.Int, from, to uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{p.address},
		Topics: [][]common.Hash{
			{p.idByKind[kind]},
			{common.BigToHash(campaignID)},
		},
	}
}

// LiveQuery builds the subscription query covering all eight event kinds of
// one campaign.
func (p *Parser) LiveQuery(campaignID *big.Int) ethereum.FilterQuery {
	ids := make([]common.Hash, 0, len(eventNames))
	for _, kind := range models.Kinds() {
		ids = append(ids, p.idByKind[kind])
	}
	return ethereum.FilterQuery{
		Addresses: []common.Address{p.address},
		Topics: [][]common.Hash{
			ids,
			{common.BigToHash(campaignID)},
		},
	}
}

type campaignCreatedLog struct {
	Id       *big.Int
	Owner    common.Address
	Title    string
	Target   *big.Int
	Deadline *big.Int
}

type donationReceivedLog struct {
	Id      *big.Int
	Donator common.Address
	Amount  *big.Int
}

type fundsWithdrawnLog struct {
	Id     *big.Int
	Owner  common.Address
	Amount *big.Int
}

type campaignPausedLog struct {
	Id *big.Int
}

type campaignResumedLog struct {
	Id *big.Int
}

type campaignCompletedLog struct {
	Id          *big.Int
	TotalRaised *big.Int
}

type campaignUpdatedLog struct {
	Id          *big.Int
	Title       string
	Description string
	Target      *big.Int
	Deadline    *big.Int
	Image       string
}

type campaignDeletedLog struct {
	Id        *big.Int
	DeletedBy common.Address
}

// ParseLog decodes one raw log into a feed event. Logs that do not belong to
// the contract's event set yield ErrUnknownEvent.
func (p *Parser) ParseLog(lg types.Log) (*models.Event, error) {
	if len(lg.Topics) == 0 {
		return nil, ErrUnknownEvent
	}
	kind, ok := p.kindByID[lg.Topics[0]]
	if !ok {
		return nil, ErrUnknownEvent
	}

	event := &models.Event{
		Kind:     kind,
		TxHash:   lg.TxHash,
		Block:    lg.BlockNumber,
		LogIndex: lg.Index,
	}

	name := eventNames[kind]

	switch kind {
	case models.EventCreated:
		var ev campaignCreatedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.CreatedDetail{Owner: ev.Owner, Title: ev.Title, Target: ev.Target, Deadline: ev.Deadline.Uint64()}

	case models.EventDonation:
		var ev donationReceivedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.DonationDetail{Donator: ev.Donator, Amount: ev.Amount}

	case models.EventWithdrawal:
		var ev fundsWithdrawnLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.WithdrawalDetail{Owner: ev.Owner, Amount: ev.Amount}

	case models.EventPaused:
		var ev campaignPausedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.PausedDetail{}

	case models.EventResumed:
		var ev campaignResumedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.ResumedDetail{}

	case models.EventCompleted:
		var ev campaignCompletedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.CompletedDetail{TotalRaised: ev.TotalRaised}

	case models.EventUpdated:
		var ev campaignUpdatedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.UpdatedDetail{Title: ev.Title, Description: ev.Description, Target: ev.Target, Deadline: ev.Deadline.Uint64(), Image: ev.Image}

	case models.EventDeleted:
		var ev campaignDeletedLog
		if err := p.bound.UnpackLog(&ev, name, lg); err != nil {
			return nil, fmt.Errorf("unpack %s: %w", name, err)
		}
		event.CampaignID = ev.Id
		event.Detail = models.DeletedDetail{DeletedBy: ev.DeletedBy}
	}

	return event, nil
}
