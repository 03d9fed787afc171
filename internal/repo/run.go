package repo

import (
	"context"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo/selector"
)

type Run struct {
	db  *bun.DB
	sel selector.S[model.Run]
}

func NewRun(db *bun.DB) *Run {
	return &Run{db: db, sel: selector.New[model.Run](db)}
}

func (r *Run) GetRuns(ctx context.Context) ([]*model.Run, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("RunCharacters").Order("created_at DESC")
	})
}

// GetRunById loads a run with its full roster: each roster entry carries its
// character, and each character carries its assignments scoped to this run
// together with the assigned items.
func (r *Run) GetRunById(ctx context.Context, id int) (*model.Run, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("run.id = ?", id).
			Relation("RunCharacters").
			Relation("RunCharacters.Character").
			Relation("RunCharacters.Character.Items", func(sq *bun.SelectQuery) *bun.SelectQuery {
				return sq.Where("character_item.run_id = ?", id)
			}).
			Relation("RunCharacters.Character.Items.Item")
	})
}

func (r *Run) CreateRun(ctx context.Context, run *model.Run) (*model.Run, error) {
	_, err := r.db.NewInsert().
		Model(run).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// DeleteRun removes a run together with its assignment records and roster
// links, in dependency order inside one transaction.
func (r *Run) DeleteRun(ctx context.Context, id int) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*model.CharacterItem)(nil)).
			Where("run_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*model.RunCharacter)(nil)).
			Where("run_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*model.Run)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return pgerr.ErrNotFound.Msg("run not found")
		}

		return nil
	})
}

// DemoCharacter seeds one roster member of the demo run.
type DemoCharacter struct {
	Name     string
	Class    string
	Subclass null.String
}

// CreateDemoRun seeds a run with the given characters already attached,
// atomically: either the run, all characters and all roster links exist
// afterwards, or nothing does.
func (r *Run) CreateDemoRun(ctx context.Context, run *model.Run, roster []DemoCharacter) (*model.Run, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(run).
			Returning("*").
			Exec(ctx); err != nil {
			return err
		}

		for _, member := range roster {
			character := &model.Character{
				Name:     member.Name,
				Class:    null.StringFrom(member.Class),
				Subclass: member.Subclass,
			}
			if _, err := tx.NewInsert().
				Model(character).
				Returning("*").
				Exec(ctx); err != nil {
				return err
			}

			runCharacter := &model.RunCharacter{
				RunID:       run.ID,
				CharacterID: character.ID,
				Character:   character,
			}
			if _, err := tx.NewInsert().
				Model(runCharacter).
				Returning("*").
				Exec(ctx); err != nil {
				return err
			}

			run.RunCharacters = append(run.RunCharacters, runCharacter)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (r *Run) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Run)(nil)).Count(ctx)
}
