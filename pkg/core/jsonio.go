package core

import (
	"encoding/json"
	"io"
)

// MarshalKeys pretty-prints key matches as JSON for humans or pipelines.
func MarshalKeys(w io.Writer, keys []KeyMatch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(keys)
}

// UnmarshalKeys decodes key-match JSON, useful for ingestion tests.
func UnmarshalKeys(r io.Reader) ([]KeyMatch, error) {
	var ks []KeyMatch
	if err := json.NewDecoder(r).Decode(&ks); err != nil {
		return nil, err
	}
	return ks, nil
}
