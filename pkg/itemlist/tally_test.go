package itemlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally_TopBreaksTiesByFirstAdded(t *testing.T) {
	var tally Tally
	tally.Add("Latte", 2)
	tally.Add("Vada pav", 3)
	tally.Add("Latte", 1)

	name, qty, ok := tally.Top()
	assert.True(t, ok)
	assert.Equal(t, "Latte", name)
	assert.Equal(t, 3, qty)
}

func TestTally_TopStrictlyHighest(t *testing.T) {
	tally := NewTally()
	tally.Add("Samosa", 1)
	tally.Add("Espresso", 4)
	tally.Add("Latte", 4)

	name, _, _ := tally.Top()
	assert.Equal(t, "Espresso", name)
}

func TestTally_TopEmpty(t *testing.T) {
	_, _, ok := NewTally().Top()
	assert.False(t, ok)
}

func TestTally_MergeKeepsOrder(t *testing.T) {
	day := NewTally()
	day.Merge(Decode("Vada pav x1; Latte x2").Tally)
	day.Merge(Decode("Latte x1; Samosa x2; Vada pav x2").Tally)
	day.Merge(nil)

	assert.Equal(t, []string{"Vada pav", "Latte", "Samosa"}, day.Names())
	assert.Equal(t, 3, day.Get("Vada pav"))
	assert.Equal(t, 3, day.Get("Latte"))

	name, _, _ := day.Top()
	assert.Equal(t, "Vada pav", name)
}
