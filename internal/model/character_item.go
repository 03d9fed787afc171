package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// CharacterItem is an assignment record linking a run, a character and an
// item, optionally bound to an equipment slot. (run_id, item_id) is the
// canonical uniqueness key of an assignment; slot-bound rows are additionally
// unique on (run_id, character_id, slot_id) which is the upsert conflict
// target of the slot assignment endpoint.
type CharacterItem struct {
	bun.BaseModel `bun:"character_items"`

	ID          int         `bun:",pk,autoincrement" json:"id"`
	RunID       int         `bun:"run_id" json:"runId"`
	CharacterID int         `bun:"character_id" json:"characterId"`
	ItemID      int         `bun:"item_id" json:"itemId"`
	SlotID      null.Int    `bun:"slot_id" json:"slotId" swaggertype:"integer"`
	Status      string      `bun:",nullzero,notnull,default:'TO_GET'" json:"status"`
	Note        null.String `json:"note" swaggertype:"string"`

	Item *Item          `bun:"rel:belongs-to,join:item_id=id" json:"item,omitempty"`
	Slot *EquipmentSlot `bun:"rel:belongs-to,join:slot_id=id" json:"slot,omitempty"`
}
