package evm

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dataError struct {
	data any
}

func (e *dataError) Error() string { return "execution reverted" }

func (e *dataError) ErrorData() interface{} { return e.data }

func TestDecodeRevert(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")

	tests := []struct {
		name    string
		give    error
		wantErr string
		wantIs  error
	}{
		{name: "nil", give: nil},
		{name: "no revert data", give: plain, wantErr: "connection refused", wantIs: plain},
		{
			name: "reason string",
			// Error("nope")
			give: &dataError{data: "0x08c379a0" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000004" +
				"6e6f706500000000000000000000000000000000000000000000000000000000"},
			wantErr: "execution reverted: nope",
		},
		{
			name:    "unknown selector",
			give:    &dataError{data: []byte{0xde, 0xad, 0xbe, 0xef}},
			wantErr: "execution reverted: 0xdeadbeef",
		},
		{
			name:    "too short",
			give:    &dataError{data: "0x01"},
			wantErr: "execution reverted",
		},
		{
			name:    "not hex",
			give:    &dataError{data: "zz"},
			wantErr: "execution reverted",
		},
		{
			name:    "action failed",
			give:    &dataError{data: hexutil.Encode(append([]byte{0xa6, 0xa7, 0xdb, 0xbd}, make([]byte, 32)...))},
			wantErr: "action 0 failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := DecodeRevert(tt.give)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tt.wantErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestCallIDToBytes32(t *testing.T) {
	t.Parallel()

	got := callIDToBytes32(0x0102)

	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000102", hexutil.Encode(got[:]))
}
