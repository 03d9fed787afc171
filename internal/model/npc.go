package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Npc struct {
	bun.BaseModel `bun:"npcs"`

	ID       int         `bun:",pk,autoincrement" json:"id"`
	Name     string      `json:"name"`
	Act      int         `json:"act"`
	PosX     null.Int    `bun:"pos_x" json:"pos_x" swaggertype:"integer"`
	PosY     null.Int    `bun:"pos_y" json:"pos_y" swaggertype:"integer"`
	WikiLink null.String `bun:"wiki_link" json:"wikiLink" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`
}
