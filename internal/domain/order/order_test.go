package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineRejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewLine(1, 2, 0, 9.99)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewLine(1, 2, -3, 9.99)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestTotal(t *testing.T) {
	assert.Zero(t, Total(nil))

	lines := []Line{
		{ProductID: 1, Quantity: 2, UnitPrice: 10.50},
		{ProductID: 2, Quantity: 1, UnitPrice: 5.25},
	}
	assert.InDelta(t, 26.25, Total(lines), 1e-9)
}

func TestCloneIsIndependent(t *testing.T) {
	ord := New(7, 3)
	line, err := NewLine(0, 1, 2, 4.0)
	require.NoError(t, err)
	ord.Lines = append(ord.Lines, *line)

	clone := ord.Clone()
	clone.Lines[0].Quantity = 99
	clone.TotalPrice = 123

	assert.Equal(t, 2, ord.Lines[0].Quantity)
	assert.Zero(t, ord.TotalPrice)
}
