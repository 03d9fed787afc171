package types

import "gopkg.in/guregu/null.v3"

type ItemParams struct {
	Name        string      `json:"name" validate:"required"`
	Type        string      `json:"type" validate:"required"`
	Act         int         `json:"act" validate:"required,min=1,max=3"`
	SourceType  string      `json:"sourceType" validate:"required,oneof=MERCHANT QUEST POI"`
	Rarity      null.String `json:"rarity" validate:"omitempty,oneof=COMMON UNCOMMON RARE VERY_RARE LEGENDARY STORY" swaggertype:"string"`
	Description null.String `json:"description" swaggertype:"string"`
	Image       null.String `json:"image" swaggertype:"string"`
	WikiLink    null.String `json:"wikiLink" swaggertype:"string"`
	MerchantID  null.Int    `json:"merchantId" swaggertype:"integer"`
	QuestID     null.Int    `json:"questId" swaggertype:"integer"`
	PoiID       null.Int    `json:"poiId" swaggertype:"integer"`
	NpcID       null.Int    `json:"npcId" swaggertype:"integer"`
}

// ItemFilter narrows the item list down to a case-insensitive substring
// match on the item name. An empty Search means no filtering.
type ItemFilter struct {
	Search string `query:"search"`
}
