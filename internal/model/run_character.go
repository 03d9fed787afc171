package model

import "github.com/uptrace/bun"

// RunCharacter links a character into a run's roster. A character appears at
// most once per run and a run holds at most four characters; both limits are
// enforced transactionally on attach and backed by a unique index on
// (run_id, character_id).
type RunCharacter struct {
	bun.BaseModel `bun:"run_characters"`

	ID          int `bun:",pk,autoincrement" json:"id"`
	RunID       int `bun:"run_id" json:"runId"`
	CharacterID int `bun:"character_id" json:"characterId"`

	Character *Character `bun:"rel:belongs-to,join:character_id=id" json:"character,omitempty"`
}
