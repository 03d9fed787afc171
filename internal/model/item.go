package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Item struct {
	bun.BaseModel `bun:"items"`

	ID          int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Act         int         `json:"act"`
	SourceType  string      `bun:"source_type" json:"sourceType"`
	Rarity      null.String `json:"rarity" swaggertype:"string"`
	Description null.String `json:"description" swaggertype:"string"`
	Image       null.String `json:"image" swaggertype:"string"`
	WikiLink    null.String `bun:"wiki_link" json:"wikiLink" swaggertype:"string"`

	// source entity references; which one is set follows SourceType
	MerchantID null.Int `bun:"merchant_id" json:"merchantId" swaggertype:"integer"`
	QuestID    null.Int `bun:"quest_id" json:"questId" swaggertype:"integer"`
	PoiID      null.Int `bun:"poi_id" json:"poiId" swaggertype:"integer"`
	NpcID      null.Int `bun:"npc_id" json:"npcId" swaggertype:"integer"`
}
