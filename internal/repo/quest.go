package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Quest struct {
	db  *bun.DB
	sel selector.S[model.Quest]
}

func NewQuest(db *bun.DB) *Quest {
	return &Quest{db: db, sel: selector.New[model.Quest](db)}
}

func (r *Quest) GetQuests(ctx context.Context, page types.PageRequest) ([]*model.Quest, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

// GetQuestById eagerly includes the quest giver.
func (r *Quest) GetQuestById(ctx context.Context, id int) (*model.Quest, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("quest.id = ?", id).Relation("Npc")
	})
}

func (r *Quest) CreateQuest(ctx context.Context, quest *model.Quest) (*model.Quest, error) {
	_, err := r.db.NewInsert().
		Model(quest).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return quest, nil
}

func (r *Quest) UpdateQuest(ctx context.Context, quest *model.Quest) (*model.Quest, error) {
	res, err := r.db.NewUpdate().
		Model(quest).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return quest, nil
}

func (r *Quest) DeleteQuest(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Quest)(nil)).
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

func (r *Quest) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Quest)(nil)).Count(ctx)
}
