package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Poi struct {
	db  *bun.DB
	sel selector.S[model.Poi]
}

func NewPoi(db *bun.DB) *Poi {
	return &Poi{db: db, sel: selector.New[model.Poi](db)}
}

func (r *Poi) GetPois(ctx context.Context, page types.PageRequest) ([]*model.Poi, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Poi) GetPoiById(ctx context.Context, id int) (*model.Poi, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Poi) CreatePoi(ctx context.Context, poi *model.Poi) (*model.Poi, error) {
	_, err := r.db.NewInsert().
		Model(poi).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return poi, nil
}

func (r *Poi) UpdatePoi(ctx context.Context, poi *model.Poi) (*model.Poi, error) {
	res, err := r.db.NewUpdate().
		Model(poi).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return poi, nil
}

func (r *Poi) DeletePoi(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Poi)(nil)).
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

func (r *Poi) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Poi)(nil)).Count(ctx)
}
