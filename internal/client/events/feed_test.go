package events

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

func ev(block uint64, index uint) *models.Event {
	return &models.Event{
		Kind:       models.EventDonation,
		CampaignID: big.NewInt(1),
		TxHash:     common.BigToHash(big.NewInt(int64(block)*1000 + int64(index))),
		Block:      block,
		LogIndex:   index,
		Detail:     models.DonationDetail{Amount: big.NewInt(1)},
	}
}

func TestFeed_InsertKeepsNewestFirst(t *testing.T) {
	f := NewFeed()

	require.True(t, f.Insert(ev(100, 0)))
	require.True(t, f.Insert(ev(300, 2)))
	require.True(t, f.Insert(ev(300, 1)))
	require.True(t, f.Insert(ev(200, 5)))

	got := f.Events()
	require.Len(t, got, 4)
	assert.Equal(t, uint64(300), got[0].Block)
	assert.Equal(t, uint(2), got[0].LogIndex)
	assert.Equal(t, uint64(300), got[1].Block)
	assert.Equal(t, uint(1), got[1].LogIndex)
	assert.Equal(t, uint64(200), got[2].Block)
	assert.Equal(t, uint64(100), got[3].Block)
}

func TestFeed_InsertDropsDuplicates(t *testing.T) {
	f := NewFeed()

	first := ev(100, 3)
	require.True(t, f.Insert(first))

	// same (tx, index) seen again via the other delivery path
	dup := ev(100, 3)
	dup.Live = true
	assert.False(t, f.Insert(dup))

	assert.Equal(t, 1, f.Len())
	assert.False(t, f.Events()[0].Live, "first delivery wins")
}

func TestFeed_SnapshotIsACopy(t *testing.T) {
	f := NewFeed()
	require.True(t, f.Insert(ev(1, 0)))

	snap := f.Events()
	snap[0] = nil

	require.NotNil(t, f.Events()[0])
}
