package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Quest struct {
	QuestRepo *repo.Quest
}

func NewQuest(questRepo *repo.Quest) *Quest {
	return &Quest{
		QuestRepo: questRepo,
	}
}

func (s *Quest) GetQuests(ctx context.Context, page types.PageRequest) ([]*model.Quest, int, error) {
	return s.QuestRepo.GetQuests(ctx, page)
}

func (s *Quest) GetQuestById(ctx context.Context, id int) (*model.Quest, error) {
	return s.QuestRepo.GetQuestById(ctx, id)
}

func (s *Quest) CreateQuest(ctx context.Context, params *types.QuestParams) (*model.Quest, error) {
	return s.QuestRepo.CreateQuest(ctx, &model.Quest{
		Name:     params.Name,
		Act:      params.Act,
		NpcID:    params.NpcID,
		Phase:    params.Phase,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Quest) UpdateQuest(ctx context.Context, id int, params *types.QuestParams) (*model.Quest, error) {
	return s.QuestRepo.UpdateQuest(ctx, &model.Quest{
		ID:       id,
		Name:     params.Name,
		Act:      params.Act,
		NpcID:    params.NpcID,
		Phase:    params.Phase,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Quest) DeleteQuest(ctx context.Context, id int) error {
	return s.QuestRepo.DeleteQuest(ctx, id)
}
