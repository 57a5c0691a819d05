package solanarpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

const encodingBase64 = "base64"

type (
	// commitmentConfig is the configuration object of read methods.
	commitmentConfig struct {
		Commitment rpc.CommitmentType `json:"commitment,omitempty"`
	}

	// accountConfig is the configuration of getAccountInfo.
	accountConfig struct {
		Encoding   string             `json:"encoding"`
		Commitment rpc.CommitmentType `json:"commitment,omitempty"`
	}

	// memcmp matches account bytes at Offset against the base58 Bytes.
	memcmp struct {
		Offset uint64 `json:"offset"`
		Bytes  string `json:"bytes"`
	}

	// programAccountsFilter is one filter of getProgramAccounts.
	programAccountsFilter struct {
		Memcmp *memcmp `json:"memcmp,omitempty"`
	}

	// programAccountsConfig is the configuration of getProgramAccounts.
	programAccountsConfig struct {
		Encoding   string                  `json:"encoding"`
		Commitment rpc.CommitmentType      `json:"commitment,omitempty"`
		Filters    []programAccountsFilter `json:"filters"`
	}

	// sendConfig is the configuration of sendTransaction. Retries are left to
	// the caller so that a transaction is broadcast exactly once.
	sendConfig struct {
		Encoding            string             `json:"encoding"`
		PreflightCommitment rpc.CommitmentType `json:"preflightCommitment,omitempty"`
		MaxRetries          uint               `json:"maxRetries"`
	}

	// signatureStatusConfig is the configuration of getSignatureStatuses.
	signatureStatusConfig struct {
		SearchTransactionHistory bool `json:"searchTransactionHistory"`
	}
)

type (
	// encodedData is the ["<payload>", "<encoding>"] pair carrying account bytes.
	encodedData []string

	// accountResponse is an account as returned by the RPC node.
	accountResponse struct {
		Data       encodedData `json:"data"`
		Owner      string      `json:"owner"`
		Lamports   uint64      `json:"lamports"`
		Executable bool        `json:"executable"`
	}

	// accountInfoResponse is the result of getAccountInfo.
	accountInfoResponse struct {
		Value *accountResponse `json:"value"`
	}

	// keyedAccountResponse is one entry of the getProgramAccounts result.
	keyedAccountResponse struct {
		Pubkey  string          `json:"pubkey"`
		Account accountResponse `json:"account"`
	}

	// blockhashResponse is the result of getLatestBlockhash.
	blockhashResponse struct {
		Value struct {
			Blockhash            string `json:"blockhash"`
			LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
		} `json:"value"`
	}

	// signatureStatus is one entry of the getSignatureStatuses result.
	signatureStatus struct {
		Slot               uint64             `json:"slot"`
		Confirmations      *uint64            `json:"confirmations"`
		Err                json.RawMessage    `json:"err"`
		ConfirmationStatus rpc.CommitmentType `json:"confirmationStatus"`
	}

	// signatureStatusesResponse is the result of getSignatureStatuses.
	signatureStatusesResponse struct {
		Value []*signatureStatus `json:"value"`
	}

	// simulationFailure is the data of a failed preflight simulation.
	simulationFailure struct {
		Err  json.RawMessage `json:"err"`
		Logs []string        `json:"logs"`
	}
)

// bytes decodes the account payload.
func (d encodedData) bytes() ([]byte, error) {
	if len(d) == 0 {
		return nil, nil
	}
	if len(d) > 1 && d[1] != encodingBase64 {
		return nil, fmt.Errorf("unsupported account encoding %q", d[1])
	}
	return base64.StdEncoding.DecodeString(d[0])
}

// failed reports whether the status carries a transaction error.
func (s signatureStatus) failed() bool {
	return len(s.Err) > 0 && string(s.Err) != "null"
}

// commitmentRank orders commitment levels from weakest to strongest.
var commitmentRank = map[rpc.CommitmentType]int{
	rpc.CommitmentProcessed: 1,
	rpc.CommitmentConfirmed: 2,
	rpc.CommitmentFinalized: 3,
}

// reached reports whether the status satisfies the wanted commitment.
func (s signatureStatus) reached(want rpc.CommitmentType) bool {
	return commitmentRank[s.ConfirmationStatus] >= commitmentRank[want]
}

// describeTransactionError renders a ledger transaction error. Custom program
// errors are rendered as "custom program error: 0x<code>" so that callers can
// recover the code from the message.
func describeTransactionError(raw json.RawMessage) string {
	var instructionErr struct {
		InstructionError []json.RawMessage `json:"InstructionError"`
	}
	if err := json.Unmarshal(raw, &instructionErr); err == nil && len(instructionErr.InstructionError) == 2 {
		index := string(instructionErr.InstructionError[0])

		var custom struct {
			Custom *uint64 `json:"Custom"`
		}
		if err := json.Unmarshal(instructionErr.InstructionError[1], &custom); err == nil && custom.Custom != nil {
			return fmt.Sprintf("instruction %s: custom program error: 0x%x", index, *custom.Custom)
		}

		var name string
		if err := json.Unmarshal(instructionErr.InstructionError[1], &name); err == nil {
			return fmt.Sprintf("instruction %s: %s", index, name)
		}
		return fmt.Sprintf("instruction %s: %s", index, instructionErr.InstructionError[1])
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}
	return strings.TrimSpace(string(raw))
}
