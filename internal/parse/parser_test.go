package parse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
)

type stubAcquirer struct {
	text string
	err  error
}

func (s stubAcquirer) AcquireText(context.Context, []byte, constants.Format) (string, error) {
	return s.text, s.err
}

func TestParserFullReceipt(t *testing.T) {
	text := "GLOBAL SUPERMART\nDate: 2025-07-20\nTOTAL AMOUNT: 489.56\nThank you, visit again"
	p := NewParser(stubAcquirer{text: text}, nil)

	rec, err := p.Parse(context.Background(), []byte("ignored"), constants.TEXT)
	require.NoError(t, err)

	require.Equal(t, "Global Supermart", rec.Vendor)
	require.NotNil(t, rec.TxDate)
	require.True(t, rec.TxDate.Equal(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, rec.Amount)
	require.InDelta(t, 489.56, *rec.Amount, 1e-9)
	require.Equal(t, "Groceries", rec.Category)
}

func TestParserBlankText(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		p := NewParser(stubAcquirer{text: text}, nil)
		_, err := p.Parse(context.Background(), nil, constants.TEXT)
		require.ErrorIs(t, err, common.ErrNoExtractableText)
	}
}

func TestParserAcquireErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := NewParser(stubAcquirer{err: boom}, nil)
	_, err := p.Parse(context.Background(), nil, constants.PDF)
	require.ErrorIs(t, err, boom)
}

// Field-level misses never fail the parse; each missing field takes its
// documented default.
func TestParserDegradesToDefaults(t *testing.T) {
	p := NewParser(stubAcquirer{text: "an unremarkable note about nothing"}, nil)
	rec, err := p.Parse(context.Background(), nil, constants.TEXT)
	require.NoError(t, err)

	require.Equal(t, "An Unremarkable Note About Nothing", rec.Vendor)
	require.Nil(t, rec.TxDate)
	require.Nil(t, rec.Amount)
	require.Equal(t, DefaultCategory, rec.Category)
}
