package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewRun,
		NewNpc,
		NewPoi,
		NewItem,
		NewQuest,
		NewHealth,
		NewUpload,
		NewMerchant,
		NewCharacter,
		NewDashboard,
		NewEquipmentSlot,
	))
}
