package model

import "github.com/uptrace/bun"

// EquipmentSlot is a named gear position. ItemType constrains which item
// types may occupy the slot.
type EquipmentSlot struct {
	bun.BaseModel `bun:"equipment_slots"`

	ID       int    `bun:",pk,autoincrement" json:"id"`
	Label    string `json:"label"`
	ItemType string `bun:"item_type" json:"itemType"`
	Order    int    `bun:"order" json:"order"`
}
