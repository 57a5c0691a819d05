package solanastream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProgramErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "plain error", err: errors.New("connection refused"), want: ""},
		{name: "known code", err: errors.New("custom program error: 0x1771"), want: "InvalidMetadata"},
		{name: "first known code", err: errors.New("custom program error: 0x1770"), want: "AccountsNotWritable"},
		{name: "wrapped known code", err: fmt.Errorf("simulate: %w", errors.New("custom program error: 0x177d")), want: "NoFunds"},
		{name: "upper case hex", err: errors.New("custom program error: 0x177D"), want: "NoFunds"},
		{name: "unknown code", err: errors.New("custom program error: 0x1"), want: "0x1"},
	}

	for _, tc := range cases {
		t.Run("should handle "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractProgramErrorCode(tc.err))
		})
	}
}
