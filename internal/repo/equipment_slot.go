package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type EquipmentSlot struct {
	db  *bun.DB
	sel selector.S[model.EquipmentSlot]
}

func NewEquipmentSlot(db *bun.DB) *EquipmentSlot {
	return &EquipmentSlot{db: db, sel: selector.New[model.EquipmentSlot](db)}
}

func (r *EquipmentSlot) GetEquipmentSlots(ctx context.Context) ([]*model.EquipmentSlot, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("order ASC")
	})
}

func (r *EquipmentSlot) GetEquipmentSlotById(ctx context.Context, id int) (*model.EquipmentSlot, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}
