package dto

import "time"

type GenerateEventsRequest struct {
	State         string    `json:"state"`
	EntityType    string    `json:"entity_type"`
	FormationDate time.Time `json:"formation_date"`
}
