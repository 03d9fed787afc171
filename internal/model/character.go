package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Character struct {
	bun.BaseModel `bun:"characters"`

	ID       int         `bun:",pk,autoincrement" json:"id"`
	Name     string      `json:"name"`
	Class    null.String `json:"class" swaggertype:"string"`
	Subclass null.String `json:"subclass" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`

	// Items carries this character's per-run assignments when eagerly loaded
	// through a run detail query; it is never populated on plain character reads.
	Items []*CharacterItem `bun:"rel:has-many,join:id=character_id" json:"items,omitempty"`
}
