package types

import "gopkg.in/guregu/null.v3"

type RunParams struct {
	Name        string      `json:"name" validate:"required,min=1"`
	Description null.String `json:"description" swaggertype:"string"`
}

type AttachCharacterRequest struct {
	CharacterID int `json:"characterId" validate:"required,min=1"`
}

// SlotAssignmentRequest puts an item into a named equipment slot of a
// character within a run. The write is an upsert keyed on
// (run, character, slot): assigning twice to the same slot replaces.
type SlotAssignmentRequest struct {
	CharacterID int `json:"characterId" validate:"required,min=1"`
	ItemID      int `json:"itemId" validate:"required,min=1"`
	SlotID      int `json:"slotId" validate:"required,min=1"`
}

// TrackedAssignmentRequest records that an item is wanted by / obtained for
// a character within a run, without binding it to an equipment slot.
type TrackedAssignmentRequest struct {
	ItemID int         `json:"itemId" validate:"required,min=1"`
	Status string      `json:"status" validate:"omitempty,oneof=TO_GET IN_PROGRESS OBTAINED"`
	Note   null.String `json:"note" swaggertype:"string"`
}
