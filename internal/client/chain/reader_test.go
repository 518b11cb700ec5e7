package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

// fakeCaller serves canned ABI-encoded responses for contract calls.
type fakeCaller struct {
	ret map[string][]byte // method selector hex -> packed outputs
	err error
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	selector := common.Bytes2Hex(call.Data[:4])
	out, ok := f.ret[selector]
	if !ok {
		return nil, errors.New("unexpected call")
	}
	return out, nil
}

func newFakeReader(t *testing.T, method string, outputs ...interface{}) *Reader {
	t.Helper()
	contractABI := ContractABI()

	m, ok := contractABI.Methods[method]
	require.True(t, ok)
	packed, err := m.Outputs.Pack(outputs...)
	require.NoError(t, err)

	caller := &fakeCaller{ret: map[string][]byte{common.Bytes2Hex(m.ID): packed}}
	return NewReader(bind.NewBoundContract(testContractAddr, contractABI, caller, nil, nil))
}

func TestReader_GetCampaign(t *testing.T) {
	owner := common.HexToAddress("0xaa")
	r := newFakeReader(t, "getCampaign",
		owner, "Solar school", "Panels for the roof",
		big.NewInt(5000), big.NewInt(1800000000),
		big.NewInt(1200), big.NewInt(700),
		"https://gateway.pinata.cloud/ipfs/QmImg",
		big.NewInt(4), uint8(1),
	)

	c, err := r.GetCampaign(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, uint64(12), c.ID)
	assert.Equal(t, owner, c.Owner)
	assert.Equal(t, "Solar school", c.Title)
	assert.Equal(t, "Panels for the roof", c.Description)
	assert.Equal(t, int64(5000), c.Target.Int64())
	assert.Equal(t, uint64(1800000000), c.Deadline)
	assert.Equal(t, int64(1200), c.TotalRaised.Int64())
	assert.Equal(t, int64(700), c.CurrentBalance.Int64())
	assert.Equal(t, uint64(4), c.DonatorCount)
	assert.Equal(t, models.StatePaused, c.State)
}

func TestReader_GetDonators(t *testing.T) {
	addrs := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}
	amounts := []*big.Int{big.NewInt(100), big.NewInt(250)}
	r := newFakeReader(t, "getDonators", addrs, amounts)

	donations, err := r.GetDonators(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, donations, 2)

	// contract enumeration order is preserved
	assert.Equal(t, addrs[0], donations[0].Donator)
	assert.Equal(t, int64(100), donations[0].Amount.Int64())
	assert.Equal(t, addrs[1], donations[1].Donator)
	assert.Equal(t, int64(250), donations[1].Amount.Int64())
}

func TestReader_TotalCampaigns(t *testing.T) {
	r := newFakeReader(t, "totalCampaigns", big.NewInt(42))

	n, err := r.TotalCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)
}

func TestReader_IsContractOwner(t *testing.T) {
	r := newFakeReader(t, "isContractOwner", true)

	ok, err := r.IsContractOwner(context.Background(), common.HexToAddress("0xaa"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReader_CallError(t *testing.T) {
	caller := &fakeCaller{err: errors.New("rpc timeout")}
	r := NewReader(bind.NewBoundContract(testContractAddr, ContractABI(), caller, nil, nil))

	_, err := r.GetCampaign(context.Background(), 1)
	assert.ErrorContains(t, err, "getCampaign")

	_, err = r.TotalCampaigns(context.Background())
	assert.ErrorContains(t, err, "totalCampaigns")
}
