// Package main demonstrates the use of the tilemap package to render a prefecture status map.
package main

import (
	"fmt"
	"math/rand"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/model"
	"github.com/stsysd/tabimap/tilemap"
)

func main() {
	// Generate a sample travel history
	c := generateSampleCollection()

	opts := tilemap.DefaultOptions()
	opts.Title = "Japan travel map"
	opts.LinkPrefix = "#"

	// Output to stdout
	fmt.Println(tilemap.Render(c, opts))
}

// generateSampleCollection visits random locations across the catalog
func generateSampleCollection() model.Collection {
	c := catalog.Initial()
	for _, p := range c {
		// Roughly a third of the prefectures are touched
		if rand.Intn(3) != 0 {
			continue
		}
		for _, d := range p.Districts {
			if rand.Intn(2) == 0 {
				continue
			}
			next, loc, err := model.AddLocation(p, d.ID, d.Name+" Station")
			if err != nil {
				continue
			}
			// Leave some locations unvisited
			if rand.Intn(4) == 0 {
				next, _ = model.ToggleLocationVisited(next, d.ID, loc.ID)
			}
			p = next
		}
		c = c.Replace(p)
	}
	return c
}
