package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Run struct {
	bun.BaseModel `bun:"runs"`

	ID          int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	CreatedAt   time.Time   `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	RunCharacters []*RunCharacter `bun:"rel:has-many,join:id=run_id" json:"runCharacters,omitempty"`
}
