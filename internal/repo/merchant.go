package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Merchant struct {
	db  *bun.DB
	sel selector.S[model.Merchant]
}

func NewMerchant(db *bun.DB) *Merchant {
	return &Merchant{db: db, sel: selector.New[model.Merchant](db)}
}

func (r *Merchant) GetMerchants(ctx context.Context, page types.PageRequest) ([]*model.Merchant, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Merchant) GetMerchantById(ctx context.Context, id int) (*model.Merchant, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Merchant) CreateMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error) {
	_, err := r.db.NewInsert().
		Model(merchant).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return merchant, nil
}

func (r *Merchant) UpdateMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error) {
	res, err := r.db.NewUpdate().
		Model(merchant).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return merchant, nil
}

func (r *Merchant) DeleteMerchant(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Merchant)(nil)).
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

func (r *Merchant) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Merchant)(nil)).Count(ctx)
}
