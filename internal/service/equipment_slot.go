package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type EquipmentSlot struct {
	EquipmentSlotRepo *repo.EquipmentSlot
}

func NewEquipmentSlot(equipmentSlotRepo *repo.EquipmentSlot) *EquipmentSlot {
	return &EquipmentSlot{
		EquipmentSlotRepo: equipmentSlotRepo,
	}
}

func (s *EquipmentSlot) GetEquipmentSlots(ctx context.Context) ([]*model.EquipmentSlot, error) {
	return s.EquipmentSlotRepo.GetEquipmentSlots(ctx)
}
