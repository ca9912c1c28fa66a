package repository

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON, target interface{}) {
	if len(data) == 0 {
		return
	}
	// Stored payloads are produced by toJSON; a decode failure leaves the
	// target at its zero value.
	_ = json.Unmarshal(data, target)
}
