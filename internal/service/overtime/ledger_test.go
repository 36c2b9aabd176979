package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempohr/tempo-backend-go/internal/domain/overtime"
)

func hours(h float64) *float64 { return &h }

func TestNextBalance_Create(t *testing.T) {
	got, err := nextBalance(nil, hours(2.5), 10)
	require.NoError(t, err)
	assert.Equal(t, 7.5, got)
}

func TestNextBalance_UpdateReversesPriorFirst(t *testing.T) {
	// Balance 7.5 after consuming 2.5; editing the record to 4 hours lands
	// at 10 + (-4) = 6, not 7.5 - 4.
	got, err := nextBalance(hours(2.5), hours(4), 7.5)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestNextBalance_UpdateUnchangedIsIdempotent(t *testing.T) {
	got, err := nextBalance(hours(2.5), hours(2.5), 7.5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, got)
}

func TestNextBalance_DeleteCreditsBack(t *testing.T) {
	got, err := nextBalance(hours(2.5), nil, 7.5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestNextBalance_InsufficientBalance(t *testing.T) {
	_, err := nextBalance(nil, hours(3), 2)
	assert.ErrorIs(t, err, overtime.ErrInsufficientOvertimeBalance)
}

func TestNextBalance_ExactConsumptionIsAllowed(t *testing.T) {
	got, err := nextBalance(nil, hours(2), 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestNextBalance_FractionalRounding(t *testing.T) {
	// 0.1 + 0.2 style drift must not push a legitimate result negative.
	got, err := nextBalance(hours(0.1), hours(0.3), 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
