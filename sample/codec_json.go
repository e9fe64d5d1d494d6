package sample

import (
	"github.com/segmentio/encoding/json"
)

func decodeJSON(data []byte) (doc, error) {
	var d doc
	if err := json.Unmarshal(data, &d); err != nil {
		return doc{}, err
	}
	return d, nil
}

func encodeJSON(d doc) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
