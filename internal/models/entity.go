package models

import (
	"fmt"
	"time"
)

type Entity struct {
	ID        int64      `json:"entity_id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}

type EntityOut struct {
	Kind string `json:"kind"`
	ID   int64  `json:"entity_id"`
	Name string `json:"name"`
}

func (e Entity) ToResponse() EntityOut {
	return EntityOut{
		Kind: "entity",
		ID:   e.ID,
		Name: e.Name,
	}
}

// PlaceholderEntityName labels entities that are missing from the reference
// snapshot; lookups degrade to this instead of failing.
func PlaceholderEntityName(id int64) string {
	return fmt.Sprintf("Entity %d", id)
}
