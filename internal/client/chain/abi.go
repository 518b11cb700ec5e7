package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// contractABIJSON is the CryptoFundit contract interface on the Avalanche
// Fuji C-Chain. The tuple layout of getCampaign and the order of event
// arguments are fixed by the deployed contract.
const contractABIJSON = `[
  {"type":"function","name":"createCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_title","type":"string"},
    {"name":"_description","type":"string"},
    {"name":"_target","type":"uint256"},
    {"name":"_deadline","type":"uint256"},
    {"name":"_image","type":"string"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"donateToCampaign","stateMutability":"payable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"withdrawFunds","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"},
    {"name":"_amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"pauseCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"resumeCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"endCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"deleteCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"restoreCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"updateCampaign","stateMutability":"nonpayable","inputs":[
    {"name":"_id","type":"uint256"},
    {"name":"_title","type":"string"},
    {"name":"_description","type":"string"},
    {"name":"_target","type":"uint256"},
    {"name":"_deadline","type":"uint256"},
    {"name":"_image","type":"string"}],"outputs":[]},
  {"type":"function","name":"getCampaign","stateMutability":"view","inputs":[
    {"name":"_id","type":"uint256"}],
   "outputs":[
    {"name":"owner","type":"address"},
    {"name":"title","type":"string"},
    {"name":"description","type":"string"},
    {"name":"target","type":"uint256"},
    {"name":"deadline","type":"uint256"},
    {"name":"totalRaised","type":"uint256"},
    {"name":"currentBalance","type":"uint256"},
    {"name":"image","type":"string"},
    {"name":"donatorCount","type":"uint256"},
    {"name":"state","type":"uint8"}]},
  {"type":"function","name":"getDonators","stateMutability":"view","inputs":[
    {"name":"_id","type":"uint256"}],
   "outputs":[
    {"name":"donators","type":"address[]"},
    {"name":"donations","type":"uint256[]"}]},
  {"type":"function","name":"totalCampaigns","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"isContractOwner","stateMutability":"view","inputs":[
    {"name":"_account","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"event","name":"CampaignCreated","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"owner","type":"address","indexed":false},
    {"name":"title","type":"string","indexed":false},
    {"name":"target","type":"uint256","indexed":false},
    {"name":"deadline","type":"uint256","indexed":false}]},
  {"type":"event","name":"DonationReceived","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"donator","type":"address","indexed":false},
    {"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"FundsWithdrawn","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"owner","type":"address","indexed":false},
    {"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"CampaignPaused","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true}]},
  {"type":"event","name":"CampaignResumed","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true}]},
  {"type":"event","name":"CampaignCompleted","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"totalRaised","type":"uint256","indexed":false}]},
  {"type":"event","name":"CampaignUpdated","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"title","type":"string","indexed":false},
    {"name":"description","type":"string","indexed":false},
    {"name":"target","type":"uint256","indexed":false},
    {"name":"deadline","type":"uint256","indexed":false},
    {"name":"image","type":"string","indexed":false}]},
  {"type":"event","name":"CampaignDeleted","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"deletedBy","type":"address","indexed":false}]}
]`

// ContractABI returns the parsed contract ABI. It panics on a malformed
// constant, which can only happen at development time.
func ContractABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(contractABIJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}
