package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/twpayne/go-geom/encoding/geojson"
)

// DefaultNameProperty is the feature property holding the municipality name
// in the IBGE boundary exports.
const DefaultNameProperty = "name"

// LoadBoundaries reads a GeoJSON FeatureCollection from path.
func LoadBoundaries(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries: %w", err)
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse boundaries: %w", err)
	}
	return &fc, nil
}

// Inject sets valueProp on every feature to the joined value for the
// feature's nameProp, defaulting to 0. It returns the names of features that
// had no joined value.
func Inject(fc *geojson.FeatureCollection, values map[string]int64, nameProp, valueProp string) []string {
	var unmatched []string
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = make(map[string]interface{})
		}
		name, _ := f.Properties[nameProp].(string)
		if _, ok := values[name]; !ok {
			unmatched = append(unmatched, name)
		}
		f.Properties[valueProp] = Value(values, name)
	}
	return unmatched
}

// WriteBoundaries encodes fc as GeoJSON.
func WriteBoundaries(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode boundaries: %w", err)
	}
	_, err = w.Write(data)
	return err
}
