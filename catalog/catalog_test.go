package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stsysd/tabimap/model"
)

func TestInitial(t *testing.T) {
	c := Initial()
	require.Len(t, c, 47)

	seen := make(map[string]bool)
	regions := make(map[model.Region]int)
	for _, p := range c {
		assert.False(t, seen[p.ID], "duplicate prefecture id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Region.IsValid(), "prefecture %s has invalid region", p.ID)
		regions[p.Region]++

		assert.NotEmpty(t, p.Districts, "prefecture %s has no districts", p.ID)
		for i, d := range p.Districts {
			assert.Equal(t, DistrictID(p.ID, i), d.ID)
			assert.NotNil(t, d.Locations)
			assert.Empty(t, d.Locations)
		}
		assert.Equal(t, model.StatusUnvisited, model.PrefectureStatus(p))
	}
	assert.Len(t, regions, 8)
	assert.Equal(t, 1, regions[model.RegionHokkaido])
	assert.Equal(t, 8, regions[model.RegionKyushu])
}

func TestInitialReturnsFreshValues(t *testing.T) {
	a := Initial()
	b := Initial()

	tokyo, _ := a.Find("tokyo")
	updated, _, err := model.AddLocation(tokyo, "tokyo-district-0", "Shibuya Crossing")
	require.NoError(t, err)
	a = a.Replace(updated)
	changed, _ := a.Find("tokyo")
	assert.Len(t, changed.Districts[0].Locations, 1)

	fresh, _ := b.Find("tokyo")
	assert.Empty(t, fresh.Districts[0].Locations)
	again, _ := Initial().Find("tokyo")
	assert.Empty(t, again.Districts[0].Locations)
}

func TestTokyoScenario(t *testing.T) {
	tokyo, ok := Initial().Find("tokyo")
	require.True(t, ok)
	require.Greater(t, len(tokyo.Districts), 1)

	assert.Equal(t, model.StatusUnvisited, model.PrefectureStatus(tokyo))
	assert.Zero(t, model.ProgressPercent(tokyo))

	next, loc, err := model.AddLocation(tokyo, "tokyo-district-0", "Shibuya Crossing")
	require.NoError(t, err)
	assert.True(t, loc.Visited)
	assert.Equal(t, model.StatusPartial, model.PrefectureStatus(next))
	assert.InDelta(t, 100.0/float64(len(tokyo.Districts)), model.ProgressPercent(next), 1e-9)
}

func TestIDByGeoName(t *testing.T) {
	tests := map[string]string{
		"Hokkai Do":   "hokkaido",
		"Tokyo To":    "tokyo",
		"Kyoto Fu":    "kyoto",
		"Osaka Fu":    "osaka",
		"Okinawa Ken": "okinawa",
	}
	for geoName, want := range tests {
		got, ok := IDByGeoName(geoName)
		assert.True(t, ok, geoName)
		assert.Equal(t, want, got)
	}

	_, ok := IDByGeoName("Atlantis")
	assert.False(t, ok)

	// 全都道府県が名称表から引けること
	for _, id := range IDs() {
		found := false
		for _, p := range prefectureTable {
			if p.ID == id {
				got, ok := IDByGeoName(p.GeoName)
				found = ok && got == id
			}
		}
		assert.True(t, found, "prefecture %s missing from geo name table", id)
	}
}

func TestRegion(t *testing.T) {
	for _, r := range model.Regions() {
		info := Region(r)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.NameJp)
		assert.NotEmpty(t, info.Color)
	}
	assert.Equal(t, "九州・沖縄", Region(model.RegionKyushu).NameJp)
}
