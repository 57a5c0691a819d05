package config

import (
	"errors"
	"fmt"

	"github.com/gabapcia/streamkit/pkg/solanastream"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrUnknownNetwork is returned by NetworkFor for a name it does not know.
var ErrUnknownNetwork = errors.New("unknown network")

const (
	mainnetProgramID = "strmRqUCoQUgGUan5YhzUZa6KqdzwX5L6FpUxfmKg5m"
	devnetProgramID  = "HqDGZjaVRXJ9MGRQEw7qDc2rAr6iH1n1kAQdCZaCMfMZ"
	treasury         = "5SEpbdjFK5FxwTvfsGMXVQTD2v4M2c5tyRTxhdsPkgDw"
	feeOracle        = "B743wFVk2pCYhV91cn287e1xY7f1vt4gdY48hhNiuQmT"
)

type networkAddresses struct {
	rpcURL    string
	programID string
	treasury  string
	feeOracle string
}

var networks = map[string]networkAddresses{
	"mainnet": {rpcURL: rpc.MainNetBeta_RPC, programID: mainnetProgramID, treasury: treasury, feeOracle: feeOracle},
	"devnet":  {rpcURL: rpc.DevNet_RPC, programID: devnetProgramID, treasury: treasury, feeOracle: feeOracle},
	"testnet": {rpcURL: rpc.TestNet_RPC, programID: devnetProgramID, treasury: treasury, feeOracle: feeOracle},
	"local":   {rpcURL: rpc.LocalNet_RPC, programID: devnetProgramID, treasury: treasury, feeOracle: feeOracle},
}

// Network holds the addresses of one cluster. It is a value; callers get
// their own copy.
type Network struct {
	Name      string
	RPCURL    string
	ProgramID solana.PublicKey
	Treasury  solana.PublicKey
	FeeOracle solana.PublicKey
}

// NetworkFor returns the addresses of the named cluster.
func NetworkFor(name string) (Network, error) {
	addrs, ok := networks[name]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}

	n := Network{Name: name, RPCURL: addrs.rpcURL}

	var err error
	if n.ProgramID, err = parseKey("program id", addrs.programID); err != nil {
		return Network{}, err
	}
	if n.Treasury, err = parseKey("treasury", addrs.treasury); err != nil {
		return Network{}, err
	}
	if n.FeeOracle, err = parseKey("fee oracle", addrs.feeOracle); err != nil {
		return Network{}, err
	}

	return n, nil
}

// Stream returns the program addresses the stream client needs.
func (n Network) Stream() solanastream.Network {
	return solanastream.Network{
		ProgramID: n.ProgramID,
		Treasury:  n.Treasury,
		FeeOracle: n.FeeOracle,
	}
}

func parseKey(field, text string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(text)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s %q: %w", field, text, err)
	}
	return key, nil
}
