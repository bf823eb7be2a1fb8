package aggregate

import (
	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

// Virus types of the consolidated case/death table.
const (
	VirusCOVID     = "COVID"
	VirusInfluenza = "INFLUENZA"
	VirusVSR       = "VSR"
	VirusOther     = "OUTROS"
)

// VirusType assigns a single virus type to a record. A detected RSV takes
// precedence over the final classification.
func VirusType(d model.DetailRecord) string {
	switch {
	case normalize.IsAffirmative(d.RSV):
		return VirusVSR
	case d.Classification == normalize.LabelInfluenza:
		return VirusInfluenza
	case d.Classification == normalize.LabelCOVID:
		return VirusCOVID
	}
	return VirusOther
}

// Consolidate counts cases and deaths per municipality by VirusType, one row
// per canonical municipality. Records typed OUTROS are not counted.
func Consolidate(details []model.DetailRecord) []model.ConsolidatedRow {
	byMun := make(map[string]*model.ConsolidatedRow, len(model.CanonicalMunicipalities))
	rows := make([]model.ConsolidatedRow, len(model.CanonicalMunicipalities))
	for i, name := range model.CanonicalMunicipalities {
		rows[i].Municipality = name
		byMun[name] = &rows[i]
	}

	for _, d := range details {
		row, ok := byMun[d.Municipality]
		if !ok {
			continue
		}
		death := d.Evolution == normalize.LabelDeath
		switch VirusType(d) {
		case VirusCOVID:
			row.CasesCOVID++
			if death {
				row.DeathsCOVID++
			}
		case VirusInfluenza:
			row.CasesInfluenza++
			if death {
				row.DeathsInfluenza++
			}
		case VirusVSR:
			row.CasesVSR++
			if death {
				row.DeathsVSR++
			}
		}
	}
	return rows
}
