package payroll

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entity is a payable party. UniqueID is its stable identifier, DataUsageBits
// the usage recorded against it by the metering side.
type Entity struct {
	UniqueID      string  `json:"unique_id"`
	DataUsageBits float64 `json:"data_usage_bits"`
}

// LoadEntities reads a JSON array of entities from path, preserving file order.
func LoadEntities(path string) ([]Entity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entities file: %w", err)
	}

	var entities []Entity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, fmt.Errorf("parse entities file %s: %w", path, err)
	}

	return entities, nil
}
