package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/smart-city/internal/sample"
)

func TestBreakdown_FixedTotal(t *testing.T) {
	got := Breakdown(2345)
	require.Len(t, got, 4)
	assert.Equal(t, Usage{Name: "Lighting", Percent: 30, KWh: 703}, got[0])
	assert.Equal(t, Usage{Name: "Transport", Percent: 40, KWh: 938}, got[1])
	assert.Equal(t, Usage{Name: "Security", Percent: 10, KWh: 234}, got[2])
	assert.Equal(t, Usage{Name: "Other", Percent: 20, KWh: 469}, got[3])
}

func TestBreakdown_SumNeverExceedsTotal(t *testing.T) {
	for total := MinConsumption; total <= MaxConsumption; total++ {
		sum := 0
		for _, u := range Breakdown(total) {
			require.Equal(t, total*u.Percent/100, u.KWh)
			sum += u.KWh
		}
		require.LessOrEqual(t, sum, total)
	}
}

func TestEnergyAssembler_Build(t *testing.T) {
	// Date index 1, then total offset 1000 -> 2000 kWh.
	a := NewEnergyAssembler(sample.NewFixed(1, 1000))
	doc := a.Build()

	assert.Equal(t, []string{
		"--- Energy Consumption Report ---",
		"Date: 2025-12-02",
		"Total Consumption (kWh): 2000",
		"Lighting Usage: 600 kWh",
		"Transport Usage: 800 kWh",
		"Security Usage: 200 kWh",
		"Other Usage: 400 kWh",
		"--- End of Report ---",
	}, doc.Lines)
	assert.Equal(t, 0, a.Pending())
}

func TestEnergyAssembler_MarkersAppearOnce(t *testing.T) {
	a := NewEnergyAssembler(sample.New(3))
	for i := 0; i < 5; i++ {
		text := a.Build().Show()
		assert.Equal(t, 1, strings.Count(text, "--- Energy Consumption Report ---"))
		assert.Equal(t, 1, strings.Count(text, "--- End of Report ---"))
		assert.Equal(t, 1, strings.Count(text, "Total Consumption (kWh):"))
	}
}

func TestEnergyAssembler_ResultResets(t *testing.T) {
	a := NewEnergyAssembler(sample.NewFixed(0, 0))
	a.Header()
	require.Equal(t, 2, a.Pending())

	first := a.Result()
	assert.Len(t, first.Lines, 2)
	assert.Equal(t, 0, a.Pending())

	a.Footer()
	second := a.Result()
	assert.Equal(t, []string{"--- End of Report ---"}, second.Lines)
	assert.Len(t, first.Lines, 2, "earlier document is not shared with later builds")
}

func TestEnergyAssembler_BuildDiscardsPartialWork(t *testing.T) {
	a := NewEnergyAssembler(sample.NewFixed(0, 0))
	a.Footer()
	doc := a.Build()
	assert.Len(t, doc.Lines, 8)
	assert.Equal(t, "--- Energy Consumption Report ---", doc.Lines[0])
}

func TestEnergyAssembler_BodyBounds(t *testing.T) {
	low := NewEnergyAssembler(sample.NewFixed(0))
	low.Body()
	assert.Equal(t, fmt.Sprintf("Total Consumption (kWh): %d", MinConsumption), low.Result().Lines[0])

	high := NewEnergyAssembler(sample.NewFixed(4000))
	high.Body()
	assert.Equal(t, fmt.Sprintf("Total Consumption (kWh): %d", MaxConsumption), high.Result().Lines[0])
}

func TestDocument_Show(t *testing.T) {
	doc := &Document{Lines: []string{"a", "b"}}
	assert.Equal(t, "a\nb", doc.Show())
}
