package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Character struct {
	db  *bun.DB
	sel selector.S[model.Character]
}

func NewCharacter(db *bun.DB) *Character {
	return &Character{db: db, sel: selector.New[model.Character](db)}
}

func (r *Character) GetCharacters(ctx context.Context, page types.PageRequest) ([]*model.Character, int, error) {
	return r.sel.SelectPage(ctx, page.Limit(), page.Offset(), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Character) GetCharacterById(ctx context.Context, id int) (*model.Character, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Character) CreateCharacter(ctx context.Context, character *model.Character) (*model.Character, error) {
	_, err := r.db.NewInsert().
		Model(character).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return character, nil
}

func (r *Character) UpdateCharacter(ctx context.Context, character *model.Character) (*model.Character, error) {
	res, err := r.db.NewUpdate().
		Model(character).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, pgerr.ErrNotFound
	}

	return character, nil
}

func (r *Character) DeleteCharacter(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Character)(nil)).
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

func (r *Character) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Character)(nil)).Count(ctx)
}
