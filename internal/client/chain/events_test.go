package chain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

var testContractAddr = common.HexToAddress("0x00000000000000000000000000000000000000c1")

// makeLog builds a raw log the way the node would emit it: topic0 is the
// event id, topic1 the indexed campaign id, data the packed rest.
func makeLog(t *testing.T, name string, campaignID int64, block uint64, index uint, args ...interface{}) types.Log {
	t.Helper()
	ev, ok := ContractABI().Events[name]
	require.True(t, ok, "event %s not in ABI", name)

	data, err := ev.Inputs.NonIndexed().Pack(args...)
	require.NoError(t, err)

	return types.Log{
		Address:     testContractAddr,
		Topics:      []common.Hash{ev.ID, common.BigToHash(big.NewInt(campaignID))},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.BigToHash(big.NewInt(int64(block)*1000 + int64(index))),
		Index:       index,
	}
}

func TestParser_ParseLog_Donation(t *testing.T) {
	p := NewParser(testContractAddr)
	donator := common.HexToAddress("0xd0")
	lg := makeLog(t, "DonationReceived", 7, 1200, 3, donator, big.NewInt(500))

	ev, err := p.ParseLog(lg)
	require.NoError(t, err)

	assert.Equal(t, models.EventDonation, ev.Kind)
	assert.Equal(t, int64(7), ev.CampaignID.Int64())
	assert.Equal(t, uint64(1200), ev.Block)
	assert.Equal(t, uint(3), ev.LogIndex)

	detail, ok := ev.Detail.(models.DonationDetail)
	require.True(t, ok)
	assert.Equal(t, donator, detail.Donator)
	assert.Equal(t, int64(500), detail.Amount.Int64())
}

func TestParser_ParseLog_Created(t *testing.T) {
	p := NewParser(testContractAddr)
	owner := common.HexToAddress("0xaa")
	lg := makeLog(t, "CampaignCreated", 1, 900, 0,
		owner, "Clean water", big.NewInt(1000), big.NewInt(1800000000))

	ev, err := p.ParseLog(lg)
	require.NoError(t, err)

	detail, ok := ev.Detail.(models.CreatedDetail)
	require.True(t, ok)
	assert.Equal(t, owner, detail.Owner)
	assert.Equal(t, "Clean water", detail.Title)
	assert.Equal(t, int64(1000), detail.Target.Int64())
	assert.Equal(t, uint64(1800000000), detail.Deadline)
}

func TestParser_ParseLog_Updated(t *testing.T) {
	p := NewParser(testContractAddr)
	lg := makeLog(t, "CampaignUpdated", 2, 1500, 1,
		"New title", "New description", big.NewInt(2000), big.NewInt(1900000000), "ipfs://img")

	ev, err := p.ParseLog(lg)
	require.NoError(t, err)

	detail, ok := ev.Detail.(models.UpdatedDetail)
	require.True(t, ok)
	assert.Equal(t, "New title", detail.Title)
	assert.Equal(t, "ipfs://img", detail.Image)
	assert.Equal(t, uint64(1900000000), detail.Deadline)
}

func TestParser_ParseLog_StateTransitions(t *testing.T) {
	p := NewParser(testContractAddr)

	paused, err := p.ParseLog(makeLog(t, "CampaignPaused", 4, 100, 0))
	require.NoError(t, err)
	assert.Equal(t, models.EventPaused, paused.Kind)
	assert.Equal(t, int64(4), paused.CampaignID.Int64())

	resumed, err := p.ParseLog(makeLog(t, "CampaignResumed", 4, 101, 0))
	require.NoError(t, err)
	assert.Equal(t, models.EventResumed, resumed.Kind)

	deleted, err := p.ParseLog(makeLog(t, "CampaignDeleted", 4, 102, 0, common.HexToAddress("0xad")))
	require.NoError(t, err)
	detail, ok := deleted.Detail.(models.DeletedDetail)
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0xad"), detail.DeletedBy)

	completed, err := p.ParseLog(makeLog(t, "CampaignCompleted", 4, 103, 0, big.NewInt(9999)))
	require.NoError(t, err)
	cd, ok := completed.Detail.(models.CompletedDetail)
	require.True(t, ok)
	assert.Equal(t, int64(9999), cd.TotalRaised.Int64())
}

func TestParser_ParseLog_Unknown(t *testing.T) {
	p := NewParser(testContractAddr)

	_, err := p.ParseLog(types.Log{})
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = p.ParseLog(types.Log{Topics: []common.Hash{common.HexToHash("0xdead")}})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestParser_FilterQuery(t *testing.T) {
	p := NewParser(testContractAddr)
	q := p.FilterQuery(models.EventDonation, big.NewInt(9), 1000, 2999)

	assert.Equal(t, uint64(1000), q.FromBlock.Uint64())
	assert.Equal(t, uint64(2999), q.ToBlock.Uint64())
	assert.Equal(t, []common.Address{testContractAddr}, q.Addresses)
	require.Len(t, q.Topics, 2)
	assert.Equal(t, []common.Hash{ContractABI().Events["DonationReceived"].ID}, q.Topics[0])
	assert.Equal(t, []common.Hash{common.BigToHash(big.NewInt(9))}, q.Topics[1])
}

func TestParser_LiveQuery_CoversAllKinds(t *testing.T) {
	p := NewParser(testContractAddr)
	q := p.LiveQuery(big.NewInt(3))

	require.Len(t, q.Topics, 2)
	assert.Len(t, q.Topics[0], 8)
	assert.Equal(t, []common.Hash{common.BigToHash(big.NewInt(3))}, q.Topics[1])
	assert.Nil(t, q.FromBlock)
	assert.Nil(t, q.ToBlock)
}
