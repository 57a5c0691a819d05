package solanastream

import (
	"fmt"
	"regexp"
	"strconv"
)

// programErrors maps the timelock program custom error codes to stable names.
var programErrors = map[uint64]string{
	6000: "AccountsNotWritable",
	6001: "InvalidMetadata",
	6002: "InvalidMetadataAccount",
	6003: "MetadataAccountMismatch",
	6004: "InvalidEscrowAccount",
	6005: "NotAssociated",
	6006: "MintMismatch",
	6007: "TransferNotAllowed",
	6008: "ContractClosed",
	6009: "InvalidTreasury",
	6010: "InvalidTimestamps",
	6011: "InvalidDepositConfiguration",
	6012: "AmountIsZero",
	6013: "NoFunds",
	6014: "InvalidPartner",
	6015: "Uninitialized",
	6016: "InvalidStreamName",
	6017: "CancelNotAllowed",
	6018: "TopupNotAllowed",
	6019: "Paused",
	6020: "ArithmeticError",
}

var customErrorPattern = regexp.MustCompile(`custom program error: 0x([0-9a-fA-F]+)`)

// ExtractProgramErrorCode finds a custom program error in err and returns its
// name, or its hex code when the program does not define it. It returns ""
// when err carries no program error.
func ExtractProgramErrorCode(err error) string {
	if err == nil {
		return ""
	}

	m := customErrorPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}

	code, parseErr := strconv.ParseUint(m[1], 16, 64)
	if parseErr != nil {
		return ""
	}

	if name, ok := programErrors[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", code)
}
