package model

// RawRecord is one row of a surveillance table keyed by column name.
// Every value is text as extracted; an absent value is "".
type RawRecord map[string]string

// Get returns the value of field, or "" when the column is absent.
func (r RawRecord) Get(field string) string {
	return r[field]
}

// ICUPatient is the projection of a record on the ICU watch list.
type ICUPatient struct {
	PatientName      string `parquet:"patient_name"`
	Municipality     string `parquet:"municipality"`
	NotificationDate string `parquet:"notification_date"`
}

// ICUColumns returns the export header for ICUPatient rows.
func ICUColumns() []string {
	return []string{"nome do paciente", "municipio de residencia", "data da notificacao"}
}

// Values returns the row values in ICUColumns order.
func (p ICUPatient) Values() []string {
	return []string{p.PatientName, p.Municipality, p.NotificationDate}
}

// DetailRecord is a fully translated record of the region, ready for display
// and export. NotificationDate is normalized to YYYY-MM-DD, or empty when the
// source date could not be parsed.
type DetailRecord struct {
	PatientName      string `parquet:"patient_name"`
	Municipality     string `parquet:"municipality"`
	NotificationDate string `parquet:"notification_date"`
	SymptomOnsetDate string `parquet:"symptom_onset_date"`
	Criterion        string `parquet:"criterion"`
	ICU              string `parquet:"icu"`
	ICUDischargeDate string `parquet:"icu_discharge_date"`
	Classification   string `parquet:"classification"`
	Evolution        string `parquet:"evolution"`
	EvolutionDate    string `parquet:"evolution_date"`
	PCRResult        string `parquet:"pcr_result"`
	FluType          string `parquet:"flu_type"`
	FluASubtype      string `parquet:"flu_a_subtype"`
	FluBLineage      string `parquet:"flu_b_lineage"`
	RSV              string `parquet:"rsv"`
	Para1            string `parquet:"para1"`
	Para2            string `parquet:"para2"`
	Para3            string `parquet:"para3"`
	Para4            string `parquet:"para4"`
	Adeno            string `parquet:"adeno"`
	Rhino            string `parquet:"rhino"`
}

// DetailColumns returns the user-facing header for DetailRecord rows.
func DetailColumns() []string {
	return []string{
		"Nome do paciente",
		"Município de residência",
		"Data da notificação",
		"Data dos primeiros sintomas",
		"Critério de confirmação",
		"UTI",
		"Data de saída da UTI",
		"Classificação final",
		"Evolução",
		"Data da evolução",
		"Resultado RT-PCR",
		"Tipo de Influenza",
		"Subtipo Influenza A",
		"Linhagem Influenza B",
		"VSR",
		"Parainfluenza 1",
		"Parainfluenza 2",
		"Parainfluenza 3",
		"Parainfluenza 4",
		"Adenovírus",
		"Rinovírus",
	}
}

// Values returns the row values in the same order as DetailColumns().
func (d DetailRecord) Values() []string {
	return []string{
		d.PatientName,
		d.Municipality,
		d.NotificationDate,
		d.SymptomOnsetDate,
		d.Criterion,
		d.ICU,
		d.ICUDischargeDate,
		d.Classification,
		d.Evolution,
		d.EvolutionDate,
		d.PCRResult,
		d.FluType,
		d.FluASubtype,
		d.FluBLineage,
		d.RSV,
		d.Para1,
		d.Para2,
		d.Para3,
		d.Para4,
		d.Adeno,
		d.Rhino,
	}
}
