package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Npc struct {
	NpcRepo *repo.Npc
}

func NewNpc(npcRepo *repo.Npc) *Npc {
	return &Npc{
		NpcRepo: npcRepo,
	}
}

func (s *Npc) GetNpcs(ctx context.Context, page types.PageRequest) ([]*model.Npc, int, error) {
	return s.NpcRepo.GetNpcs(ctx, page)
}

func (s *Npc) GetNpcById(ctx context.Context, id int) (*model.Npc, error) {
	return s.NpcRepo.GetNpcById(ctx, id)
}

func (s *Npc) CreateNpc(ctx context.Context, params *types.SourceParams) (*model.Npc, error) {
	return s.NpcRepo.CreateNpc(ctx, &model.Npc{
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Npc) UpdateNpc(ctx context.Context, id int, params *types.SourceParams) (*model.Npc, error) {
	return s.NpcRepo.UpdateNpc(ctx, &model.Npc{
		ID:       id,
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Npc) DeleteNpc(ctx context.Context, id int) error {
	return s.NpcRepo.DeleteNpc(ctx, id)
}
