package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"PackageExpress/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.8, "0.80"},
		{1, "1.00"},
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{12.345678, "12.35"},
		{0.125, "0.13"},
		{0.004, "0.00"},
		{-0.8, "-0.80"},
		{6250, "6250.00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatAmount(tt.in), "amount %v", tt.in)
	}
}

func TestFormatAmount_NonFinite(t *testing.T) {
	require.Equal(t, "+Inf", FormatAmount(math.Inf(1)))
	require.Equal(t, "NaN", FormatAmount(math.NaN()))
}

func TestFormatQuote(t *testing.T) {
	q := model.Quote{Cost: 0.8}
	require.Equal(t, "Your estimated total for shipping this package is: $0.80", FormatQuote(q))
}
