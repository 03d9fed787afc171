package service

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/LeJxrxm/bg3-planner/internal/constant"
	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

// Run covers the run lifecycle plus the roster and assignment workflows
// hanging off a run.
type Run struct {
	RunRepo           *repo.Run
	RunCharacterRepo  *repo.RunCharacter
	CharacterItemRepo *repo.CharacterItem
	ItemRepo          *repo.Item
	EquipmentSlotRepo *repo.EquipmentSlot
}

func NewRun(
	runRepo *repo.Run,
	runCharacterRepo *repo.RunCharacter,
	characterItemRepo *repo.CharacterItem,
	itemRepo *repo.Item,
	equipmentSlotRepo *repo.EquipmentSlot,
) *Run {
	return &Run{
		RunRepo:           runRepo,
		RunCharacterRepo:  runCharacterRepo,
		CharacterItemRepo: characterItemRepo,
		ItemRepo:          itemRepo,
		EquipmentSlotRepo: equipmentSlotRepo,
	}
}

func (s *Run) GetRuns(ctx context.Context) ([]*model.Run, error) {
	return s.RunRepo.GetRuns(ctx)
}

func (s *Run) GetRunById(ctx context.Context, id int) (*model.Run, error) {
	return s.RunRepo.GetRunById(ctx, id)
}

func (s *Run) CreateRun(ctx context.Context, params *types.RunParams) (*model.Run, error) {
	run := &model.Run{
		Name: strings.TrimSpace(params.Name),
	}
	if params.Description.Valid {
		run.Description = null.StringFrom(strings.TrimSpace(params.Description.String))
	}

	return s.RunRepo.CreateRun(ctx, run)
}

func (s *Run) DeleteRun(ctx context.Context, id int) error {
	return s.RunRepo.DeleteRun(ctx, id)
}

var demoRoster = []repo.DemoCharacter{
	{Name: "Tav", Class: "Custom"},
	{Name: "Karlach", Class: "Barbarian", Subclass: null.StringFrom("Berserker")},
	{Name: "Gale", Class: "Wizard", Subclass: null.StringFrom("Evocation")},
	{Name: "Wyll", Class: "Warlock", Subclass: null.StringFrom("The Fiend")},
}

// CreateDemoRun seeds a ready-to-explore run with the four origin companions.
func (s *Run) CreateDemoRun(ctx context.Context) (*model.Run, error) {
	run := &model.Run{
		Name:        "BG3 Demo Run",
		Description: null.StringFrom("Demo run with Tav, Karlach, Gale and Wyll"),
	}

	return s.RunRepo.CreateDemoRun(ctx, run, demoRoster)
}

func (s *Run) AttachCharacter(ctx context.Context, runID, characterID int) (*model.RunCharacter, error) {
	return s.RunCharacterRepo.AttachCharacter(ctx, runID, characterID)
}

func (s *Run) DetachCharacter(ctx context.Context, runID, characterID int) error {
	return s.RunCharacterRepo.DetachCharacter(ctx, runID, characterID)
}

// AssignSlotItem equips an item into an equipment slot after checking the
// slot accepts the item's type. The write itself is a single upsert, so a
// repeated assignment replaces the slot occupant instead of duplicating it.
func (s *Run) AssignSlotItem(ctx context.Context, runID int, req *types.SlotAssignmentRequest) (*model.CharacterItem, error) {
	slot, err := s.EquipmentSlotRepo.GetEquipmentSlotById(ctx, req.SlotID)
	if errors.Is(err, pgerr.ErrNotFound) {
		return nil, pgerr.ErrNotFound.Msg("slot or item not found")
	} else if err != nil {
		return nil, err
	}

	item, err := s.ItemRepo.GetItemById(ctx, req.ItemID)
	if errors.Is(err, pgerr.ErrNotFound) {
		return nil, pgerr.ErrNotFound.Msg("slot or item not found")
	} else if err != nil {
		return nil, err
	}

	if slot.ItemType != item.Type {
		return nil, pgerr.ErrInvalidReq.Msg(
			"item of type %s cannot be equipped in %s (%s)",
			item.Type, slot.Label, slot.ItemType,
		)
	}

	assignment, err := s.CharacterItemRepo.UpsertSlotAssignment(ctx, runID, req)
	if err != nil {
		return nil, err
	}

	assignment.Item = item
	assignment.Slot = slot
	return assignment, nil
}

// AssignTrackedItem records a slot-less, status-tracked assignment. The
// status defaults to TO_GET when the request leaves it empty.
func (s *Run) AssignTrackedItem(ctx context.Context, runID, characterID int, req *types.TrackedAssignmentRequest) (*model.CharacterItem, error) {
	if req.Status == "" {
		req.Status = constant.StatusToGet
	}

	return s.CharacterItemRepo.CreateTrackedAssignment(ctx, runID, characterID, req)
}

func (s *Run) UnassignItem(ctx context.Context, runID, itemID int) error {
	return s.CharacterItemRepo.DeleteByRunAndItem(ctx, runID, itemID)
}
