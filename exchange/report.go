package exchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/model"
)

const (
	reportRule = "=================================================="
	regionRule = "----------------------------------------"
)

// Report は地方ごとにまとめたテキストレポートを返します。
// 訪問地区のない都道府県は本文に含めません。
func Report(c model.Collection, now time.Time) string {
	var b strings.Builder

	b.WriteString("=== JAPAN TRAVEL REPORT ===\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.UTC().Format(time.DateOnly))
	b.WriteString(reportRule + "\n")

	for _, region := range model.Regions() {
		fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(catalog.Region(region).Name))
		b.WriteString(regionRule + "\n")

		for _, p := range c.ByRegion(region) {
			writePrefecture(&b, p)
		}
	}

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("End of report\n")
	return b.String()
}

func writePrefecture(b *strings.Builder, p model.Prefecture) {
	visitedDistricts := model.VisitedDistrictCount(p)
	if visitedDistricts == 0 {
		return
	}
	locations := model.LocationProgress(p)

	if model.PrefectureStatus(p) == model.StatusCompleted {
		fmt.Fprintf(b, "\n  ✓ %s (%s) - Fully visited\n", p.Name, p.NameJp)
		fmt.Fprintf(b, "    Districts: %d/%d, Locations: %d\n", visitedDistricts, len(p.Districts), locations.Visited)
		return
	}

	fmt.Fprintf(b, "\n  ◐ %s (%s) - Partially visited\n", p.Name, p.NameJp)
	fmt.Fprintf(b, "    Districts: %d/%d, Locations: %d/%d\n", visitedDistricts, len(p.Districts), locations.Visited, locations.Total)
	for _, d := range p.Districts {
		if !model.HasVisitedLocations(d) {
			continue
		}
		fmt.Fprintf(b, "    %s (%s):\n", d.Name, d.NameJp)
		for _, l := range d.Locations {
			if l.Visited {
				fmt.Fprintf(b, "      • %s\n", l.Name)
			}
		}
	}
}
