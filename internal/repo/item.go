package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Item struct {
	db  *bun.DB
	sel selector.S[model.Item]
}

func NewItem(db *bun.DB) *Item {
	return &Item{db: db, sel: selector.New[model.Item](db)}
}

// GetItems pages through items ordered by name, optionally narrowed by a
// case-insensitive substring match on the name.
func (r *Item) GetItems(ctx context.Context, page types.PageRequest, filter types.ItemFilter) ([]*model.Item, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		if filter.Search != "" {
			q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
		}
		return q.Order("name ASC")
	})
}

func (r *Item) GetItemById(ctx context.Context, id int) (*model.Item, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Item) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	_, err := r.db.NewInsert().
		Model(item).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *Item) UpdateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	res, err := r.db.NewUpdate().
		Model(item).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return item, nil
}

func (r *Item) DeleteItem(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Item)(nil)).
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

func (r *Item) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Item)(nil)).Count(ctx)
}
