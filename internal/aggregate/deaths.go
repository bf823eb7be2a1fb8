package aggregate

import (
	"sort"

	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

// DeathTable cross-tabulates deaths by municipality and final classification.
type DeathTable struct {
	counts map[string]map[string]int64
}

// Deaths counts records whose evolution is a death from the notified
// condition. Deaths from other causes are excluded.
func Deaths(details []model.DetailRecord) *DeathTable {
	t := &DeathTable{counts: make(map[string]map[string]int64)}
	for _, d := range details {
		if d.Evolution != normalize.LabelDeath {
			continue
		}
		byClass, ok := t.counts[d.Municipality]
		if !ok {
			byClass = make(map[string]int64)
			t.counts[d.Municipality] = byClass
		}
		byClass[d.Classification]++
	}
	return t
}

// Lookup returns the number of deaths for a municipality and classification label.
func (t *DeathTable) Lookup(municipality, classification string) int64 {
	return t.counts[municipality][classification]
}

// Total returns all deaths counted for a municipality.
func (t *DeathTable) Total(municipality string) int64 {
	var n int64
	for _, c := range t.counts[municipality] {
		n += c
	}
	return n
}

// Cells returns every non-zero cell sorted by municipality then classification.
func (t *DeathTable) Cells() []model.DeathCell {
	var cells []model.DeathCell
	for mun, byClass := range t.counts {
		for class, n := range byClass {
			cells = append(cells, model.DeathCell{Municipality: mun, Classification: class, Deaths: n})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Municipality != cells[j].Municipality {
			return cells[i].Municipality < cells[j].Municipality
		}
		return cells[i].Classification < cells[j].Classification
	})
	return cells
}
