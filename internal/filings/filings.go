// Package filings holds the per-state periodic filing requirement table.
// The table is hand-maintained reference data shipped as a versioned JSON
// asset and loaded once at startup; it is never written at runtime.
package filings

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

const (
	FrequencyAnnual   = "annual"
	FrequencyBiennial = "biennial"
)

const (
	EntityLLC          = "LLC"
	EntityCorporation  = "Corporation"
	EntityProfessional = "Professional Corporation"
	EntityNonProfit    = "Non-Profit Corporation"
)

type Requirement struct {
	Required  bool   `json:"required"`
	Frequency string `json:"frequency,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type table struct {
	Version string                            `json:"version"`
	States  map[string]map[string]Requirement `json:"states"`
}

//go:embed requirements.json
var raw []byte

var tbl table

func init() {
	if err := json.Unmarshal(raw, &tbl); err != nil {
		panic(fmt.Sprintf("filings: bad requirements.json: %v", err))
	}
}

// Version reports the revision of the embedded table.
func Version() string {
	return tbl.Version
}

// FilingRequirement looks up the requirement for a (state, entity type)
// pair. The second return value is false when the state or entity type is
// unknown.
func FilingRequirement(state, entityType string) (Requirement, bool) {
	byEntity, ok := tbl.States[state]
	if !ok {
		return Requirement{}, false
	}

	req, ok := byEntity[entityType]
	return req, ok
}

// IsFilingRequired is a fail-closed convenience wrapper: unknown states
// and entity types report no requirement rather than an error.
func IsFilingRequired(state, entityType string) bool {
	req, ok := FilingRequirement(state, entityType)
	if !ok {
		return false
	}

	return req.Required
}
