package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"gopkg.in/guregu/null.v3"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
)

const pgUniqueViolation = "23505"

type CharacterItem struct {
	db *bun.DB
}

func NewCharacterItem(db *bun.DB) *CharacterItem {
	return &CharacterItem{db: db}
}

// UpsertSlotAssignment puts an item into an equipment slot. The conflict
// target (run_id, character_id, slot_id) makes a repeated assignment replace
// the slot's occupant in a single atomic statement.
func (r *CharacterItem) UpsertSlotAssignment(ctx context.Context, runID int, req *types.SlotAssignmentRequest) (*model.CharacterItem, error) {
	assignment := &model.CharacterItem{
		RunID:       runID,
		CharacterID: req.CharacterID,
		ItemID:      req.ItemID,
		SlotID:      null.IntFrom(int64(req.SlotID)),
	}

	_, err := r.db.NewInsert().
		Model(assignment).
		On("CONFLICT (run_id, character_id, slot_id) DO UPDATE").
		Set("item_id = EXCLUDED.item_id").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// CreateTrackedAssignment records a status-tracked, slot-less assignment.
// The run, roster and item existence checks plus the per-run item uniqueness
// check run inside the same transaction as the insert; the unique index on
// (run_id, item_id) backs the check so a lost race still fails at write time.
func (r *CharacterItem) CreateTrackedAssignment(ctx context.Context, runID, characterID int, req *types.TrackedAssignmentRequest) (*model.CharacterItem, error) {
	assignment := &model.CharacterItem{
		RunID:       runID,
		CharacterID: characterID,
		ItemID:      req.ItemID,
		Status:      req.Status,
		Note:        req.Note,
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

		item := new(model.Item)
		err = tx.NewSelect().
			Model(item).
			Where("id = ?", req.ItemID).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return pgerr.ErrNotFound.Msg("item not found")
		} else if err != nil {
			return err
		}

		assigned, err := tx.NewSelect().
			Model((*model.CharacterItem)(nil)).
			Where("run_id = ?", runID).
			Where("item_id = ?", req.ItemID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if assigned {
			return pgerr.ErrConflict.Msg("item already assigned in this run")
		}

		if _, err := tx.NewInsert().
			Model(assignment).
			Returning("*").
			Exec(ctx); err != nil {
			return wrapUniqueViolation(err, "item already assigned in this run")
		}

		assignment.Item = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// DeleteByRunAndItem unassigns an item from a run. (run_id, item_id) is the
// canonical assignment key, so the character in the route is not part of the
// lookup.
func (r *CharacterItem) DeleteByRunAndItem(ctx context.Context, runID, itemID int) error {
	res, err := r.db.NewDelete().
		Model((*model.CharacterItem)(nil)).
		Where("run_id = ?", runID).
		Where("item_id = ?", itemID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return pgerr.ErrNotFound.Msg("item assignment not found")
	}

	return nil
}

func wrapUniqueViolation(err error, message string) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
		return pgerr.ErrConflict.Msg(message)
	}
	return err
}
