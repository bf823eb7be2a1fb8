package normalize

// TableVersion identifies the revision of the code tables below. Bump it
// whenever a label or code changes.
const TableVersion = "sivep-gripe-2021.1"

// CodeTable maps the codes of one source field to display labels.
type CodeTable struct {
	Field  string
	Labels map[string]string
	// EmptyLabel replaces an absent code. Tables without one pass "" through.
	EmptyLabel string
}

// Translate returns the label for raw. Unmapped codes pass through unchanged.
func (t CodeTable) Translate(raw string) string {
	p := Observe(raw)
	if !p.Present {
		if t.EmptyLabel != "" {
			return t.EmptyLabel
		}
		return p.Value
	}
	if label, ok := t.Labels[p.Value]; ok {
		return label
	}
	return p.Value
}

// Labels shared by translation and aggregation.
const (
	LabelYes          = "Sim"
	LabelCOVID        = "SRAG por Covid-19"
	LabelInfluenza    = "SRAG por influenza"
	LabelDeath        = "Óbito"
	LabelInfluenzaA   = "Influenza A"
	LabelInfluenzaB   = "Influenza B"
	LabelH1N1         = "Influenza A (H1N1)"
	LabelH3N2         = "Influenza A (H3N2)"
	LabelVictoria     = "Victoria"
	LabelYamagata     = "Yamagata"
	LabelSuspected    = "Suspeito"
	LabelAwaiting     = "Aguardando"
	LabelNotPerformed = "não realizado"
)

var (
	Criterion = CodeTable{
		Field: "CRITERIO",
		Labels: map[string]string{
			"1": "laboratorial",
			"2": "clinico-epidemiologico",
			"3": "clinico",
			"4": "clinico-imagem",
		},
	}

	ICU = CodeTable{
		Field: "UTI",
		Labels: map[string]string{
			"1": LabelYes,
			"2": "Não",
			"9": "Ignorado",
		},
	}

	Classification = CodeTable{
		Field: "CLASSI_FIN",
		Labels: map[string]string{
			"1": LabelInfluenza,
			"2": "SRAG por outro vírus respiratório",
			"3": "SRAG por outro agente etiológico",
			"4": "SRAG não especificado",
			"5": LabelCOVID,
		},
		EmptyLabel: LabelSuspected,
	}

	Evolution = CodeTable{
		Field: "EVOLUCAO",
		Labels: map[string]string{
			"1": "Cura",
			"2": LabelDeath,
			"3": "Óbito por outras causas",
			"9": "Ignorado",
		},
		EmptyLabel: LabelAwaiting,
	}

	PCRResult = CodeTable{
		Field: "PCR_RESUL",
		Labels: map[string]string{
			"1": "Detectável",
			"2": "Não detectável",
			"3": "Inconclusivo",
			"4": "Não realizado",
			"5": "Aguardando resultado",
			"9": "Ignorado",
		},
	}

	FluType = CodeTable{
		Field: "TP_FLU_PCR",
		Labels: map[string]string{
			"1": LabelInfluenzaA,
			"2": LabelInfluenzaB,
		},
	}

	FluASubtype = CodeTable{
		Field: "PCR_FLUASU",
		Labels: map[string]string{
			"1": LabelH1N1,
			"2": LabelH3N2,
			"3": "não subtipado",
			"4": "não subtipável",
			"5": "Inconclusivo",
			"6": "Outro",
		},
	}

	FluBLineage = CodeTable{
		Field: "PCR_FLUBLI",
		Labels: map[string]string{
			"1": LabelVictoria,
			"2": LabelYamagata,
			"3": LabelNotPerformed,
			"4": "Inconclusivo",
			"5": "Outro",
		},
	}

	// Pathogen covers RSV, parainfluenza 1-4, adenovirus and rhinovirus flags.
	Pathogen = CodeTable{
		Field: "PCR_*",
		Labels: map[string]string{
			"1": LabelYes,
		},
	}
)

// IsAffirmative reports whether a pathogen flag, raw or translated, marks
// the pathogen as detected: "sim", "yes" or "1", ignoring case and
// surrounding whitespace.
func IsAffirmative(v string) bool {
	switch FoldSpace(v) {
	case "sim", "yes", "1":
		return true
	}
	return false
}
