package types

import (
	"math/big"
	"testing"

	"gotest.tools/v3/assert"
)

func Test_Pct16(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pct(PctBase), Pct16(100))
	assert.Equal(t, Pct(500_000_000_000_000_000), Pct16(50))
	assert.Equal(t, Pct(0), Pct16(0))
}

func Test_Pct_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give Pct
		want string
	}{
		{give: Pct16(50), want: "50%"},
		{give: Pct16(100), want: "100%"},
		{give: Pct(0), want: "0%"},
		{give: Pct(PctBase / 3), want: "33.33%"},
		{give: Pct(2), want: "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.String())
		})
	}
}

func Test_Pct_MulBig(t *testing.T) {
	t.Parallel()

	got := Pct16(25).MulBig(big.NewInt(100))
	want := new(big.Int).Mul(big.NewInt(25), new(big.Int).SetUint64(PctBase))

	assert.Equal(t, 0, got.Cmp(want))
}
