package repo

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("repo", fx.Provide(
		NewRun,
		NewNpc,
		NewPoi,
		NewItem,
		NewQuest,
		NewMerchant,
		NewCharacter,
		NewRunCharacter,
		NewCharacterItem,
		NewEquipmentSlot,
	))
}
