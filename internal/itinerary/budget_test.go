package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBudget(t *testing.T) {
	assert.Nil(t, CompareBudget(100, nil, ptr(200.0)))
	assert.Nil(t, CompareBudget(100, ptr(50.0), nil))

	under := CompareBudget(40, ptr(50.0), ptr(150.0))
	require.NotNil(t, under)
	assert.Equal(t, BudgetUnder, under.Status)
	assert.Zero(t, under.Progress)

	within := CompareBudget(100, ptr(50.0), ptr(150.0))
	require.NotNil(t, within)
	assert.Equal(t, BudgetWithin, within.Status)
	assert.Equal(t, 50.0, within.Progress)

	over := CompareBudget(400, ptr(50.0), ptr(150.0))
	require.NotNil(t, over)
	assert.Equal(t, BudgetOver, over.Status)
	assert.Equal(t, 100.0, over.Progress)
}
