package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Quest struct {
	bun.BaseModel `bun:"quests"`

	ID       int         `bun:",pk,autoincrement" json:"id"`
	Name     string      `json:"name"`
	Act      int         `json:"act"`
	NpcID    null.Int    `bun:"npc_id" json:"npcId" swaggertype:"integer"`
	Phase    null.String `json:"phase" swaggertype:"string"`
	WikiLink null.String `bun:"wiki_link" json:"wikiLink" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`

	Npc *Npc `bun:"rel:belongs-to,join:npc_id=id" json:"npc,omitempty"`
}
