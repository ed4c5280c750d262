package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOffer(t *testing.T) {
	offer, err := ComputeOffer([]Line{
		{Program: "Стропальщик", Rank: "4", PeopleCount: 3, UnitPrice: 1000},
		{Program: "Работы на высоте", PeopleCount: 2, UnitPrice: 500},
	})
	require.NoError(t, err)

	require.Len(t, offer.Lines, 2)

	assert.Equal(t, 1, offer.Lines[0].Num)
	assert.Equal(t, "Стропальщик 4 разряда", offer.Lines[0].Name)
	assert.Equal(t, int64(3000), offer.Lines[0].Total)

	assert.Equal(t, 2, offer.Lines[1].Num)
	assert.Equal(t, "Работы на высоте", offer.Lines[1].Name)
	assert.Equal(t, int64(1000), offer.Lines[1].Total)

	assert.Equal(t, int64(4000), offer.GrandTotal)
}

// Итог всегда равен сумме независимо пересчитанных строк.
func TestComputeOfferAdditive(t *testing.T) {
	lines := []Line{
		{Program: "A", PeopleCount: 7, UnitPrice: 1250},
		{Program: "B", PeopleCount: 1, UnitPrice: 99},
		{Program: "C", Rank: "2", PeopleCount: 15, UnitPrice: 3600},
	}

	offer, err := ComputeOffer(lines)
	require.NoError(t, err)

	var sum int64
	for i, line := range offer.Lines {
		assert.Equal(t, lines[i].PeopleCount*lines[i].UnitPrice, line.Total)
		sum += line.Total
	}
	assert.Equal(t, sum, offer.GrandTotal)
}

func TestComputeOfferEmpty(t *testing.T) {
	offer, err := ComputeOffer(nil)
	require.NoError(t, err)
	assert.Empty(t, offer.Lines)
	assert.Equal(t, int64(0), offer.GrandTotal)
}

func TestComputeOfferOrderPreserved(t *testing.T) {
	offer, err := ComputeOffer([]Line{
		{Program: "Второй в списке? Нет, первый", PeopleCount: 1, UnitPrice: 1},
		{Program: "Второй", PeopleCount: 1, UnitPrice: 1},
		{Program: "Третий", PeopleCount: 1, UnitPrice: 1},
	})
	require.NoError(t, err)

	for i, line := range offer.Lines {
		assert.Equal(t, i+1, line.Num)
	}
	assert.Equal(t, "Второй", offer.Lines[1].Name)
}

func TestComputeOfferZeroPrice(t *testing.T) {
	offer, err := ComputeOffer([]Line{{Program: "A", PeopleCount: 10, UnitPrice: 0}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), offer.GrandTotal)
}

func TestComputeOfferOverflowMul(t *testing.T) {
	_, err := ComputeOffer([]Line{
		{Program: "A", PeopleCount: math.MaxInt64 / 2, UnitPrice: 3},
	})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestComputeOfferOverflowSum(t *testing.T) {
	_, err := ComputeOffer([]Line{
		{Program: "A", PeopleCount: 1, UnitPrice: math.MaxInt64},
		{Program: "B", PeopleCount: 1, UnitPrice: 1},
	})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestComposeName(t *testing.T) {
	assert.Equal(t, "Стропальщик", ComposeName("Стропальщик", ""))
	assert.Equal(t, "Стропальщик 5 разряда", ComposeName("Стропальщик", "5"))
}
