package types

import "gopkg.in/guregu/null.v3"

// SourceParams is the shared payload of the map-pinned source entities
// (merchants, NPCs and points of interest).
type SourceParams struct {
	Name     string      `json:"name" validate:"required,min=1"`
	Act      int         `json:"act" validate:"required,min=1,max=3"`
	PosX     null.Int    `json:"pos_x" swaggertype:"integer"`
	PosY     null.Int    `json:"pos_y" swaggertype:"integer"`
	WikiLink null.String `json:"wikiLink" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`
}

type QuestParams struct {
	Name     string      `json:"name" validate:"required,min=1"`
	Act      int         `json:"act" validate:"required,min=1,max=3"`
	NpcID    null.Int    `json:"npcId" swaggertype:"integer"`
	Phase    null.String `json:"phase" swaggertype:"string"`
	WikiLink null.String `json:"wikiLink" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`
}
