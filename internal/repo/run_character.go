package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/LeJxrxm/bg3-planner/internal/constant"
	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
)

type RunCharacter struct {
	db *bun.DB
}

func NewRunCharacter(db *bun.DB) *RunCharacter {
	return &RunCharacter{db: db}
}

// AttachCharacter adds a character to a run's roster. All preconditions are
// checked inside the same transaction as the insert so that concurrent
// attaches cannot both pass the roster cap or the duplicate check.
func (r *RunCharacter) AttachCharacter(ctx context.Context, runID, characterID int) (*model.RunCharacter, error) {
	runCharacter := &model.RunCharacter{
		RunID:       runID,
		CharacterID: characterID,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*model.Run)(nil)).
			Where("id = ?", runID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return pgerr.ErrNotFound.Msg("run not found")
		}

		character := new(model.Character)
		err = tx.NewSelect().
			Model(character).
			Where("id = ?", characterID).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return pgerr.ErrNotFound.Msg("character not found")
		} else if err != nil {
			return err
		}

		attached, err := tx.NewSelect().
			Model((*model.RunCharacter)(nil)).
			Where("run_id = ?", runID).
			Where("character_id = ?", characterID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if attached {
			return pgerr.ErrConflict.Msg("character already assigned to this run")
		}

		count, err := tx.NewSelect().
			Model((*model.RunCharacter)(nil)).
			Where("run_id = ?", runID).
			Count(ctx)
		if err != nil {
			return err
		}
		if count >= constant.MaxRunCharacters {
			return pgerr.ErrInvalidReq.Msg("run character limit reached")
		}

		if _, err := tx.NewInsert().
			Model(runCharacter).
			Returning("*").
			Exec(ctx); err != nil {
			return err
		}

		runCharacter.Character = character
		return nil
	})
	if err != nil {
		return nil, err
	}

	return runCharacter, nil
}

// DetachCharacter removes a character from a run's roster and cascades over
// the character's assignment records for that run. Assignments go first to
// satisfy referential constraints.
func (r *RunCharacter) DetachCharacter(ctx context.Context, runID, characterID int) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		attached, err := tx.NewSelect().
			Model((*model.RunCharacter)(nil)).
			Where("run_id = ?", runID).
			Where("character_id = ?", characterID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !attached {
			return pgerr.ErrNotFound.Msg("character not assigned to this run")
		}

		if _, err := tx.NewDelete().
			Model((*model.CharacterItem)(nil)).
			Where("run_id = ?", runID).
			Where("character_id = ?", characterID).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*model.RunCharacter)(nil)).
			Where("run_id = ?", runID).
			Where("character_id = ?", characterID).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
