package normalize

// Presence is a coded value observed at the translation boundary. An empty
// source value is Absent; anything else, including whitespace, is Present.
type Presence struct {
	Value   string
	Present bool
}

// Observe classifies a raw source value.
func Observe(raw string) Presence {
	return Presence{Value: raw, Present: raw != ""}
}
