package api

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.api", fx.Invoke(
		RegisterRun,
		RegisterNpc,
		RegisterPoi,
		RegisterItem,
		RegisterQuest,
		RegisterUpload,
		RegisterMerchant,
		RegisterCharacter,
		RegisterDashboard,
		RegisterEquipmentSlot,
	))
}
