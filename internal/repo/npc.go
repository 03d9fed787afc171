package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Npc struct {
	db  *bun.DB
	sel selector.S[model.Npc]
}

func NewNpc(db *bun.DB) *Npc {
	return &Npc{db: db, sel: selector.New[model.Npc](db)}
}

func (r *Npc) GetNpcs(ctx context.Context, page types.PageRequest) ([]*model.Npc, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Npc) GetNpcById(ctx context.Context, id int) (*model.Npc, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Npc) CreateNpc(ctx context.Context, npc *model.Npc) (*model.Npc, error) {
	_, err := r.db.NewInsert().
		Model(npc).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return npc, nil
}

func (r *Npc) UpdateNpc(ctx context.Context, npc *model.Npc) (*model.Npc, error) {
	res, err := r.db.NewUpdate().
		Model(npc).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return npc, nil
}

func (r *Npc) DeleteNpc(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Npc)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return pgerr.ErrNotFound
	}

	return nil
}

func (r *Npc) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Npc)(nil)).Count(ctx)
}
