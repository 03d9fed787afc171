package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Item struct {
	ItemRepo *repo.Item
}

func NewItem(itemRepo *repo.Item) *Item {
	return &Item{
		ItemRepo: itemRepo,
	}
}

func (s *Item) GetItems(ctx context.Context, page types.PageRequest, filter types.ItemFilter) ([]*model.Item, int, error) {
	return s.ItemRepo.GetItems(ctx, page, filter)
}

func (s *Item) GetItemById(ctx context.Context, id int) (*model.Item, error) {
	return s.ItemRepo.GetItemById(ctx, id)
}

func (s *Item) CreateItem(ctx context.Context, params *types.ItemParams) (*model.Item, error) {
	return s.ItemRepo.CreateItem(ctx, itemFromParams(0, params))
}

func (s *Item) UpdateItem(ctx context.Context, id int, params *types.ItemParams) (*model.Item, error) {
	return s.ItemRepo.UpdateItem(ctx, itemFromParams(id, params))
}

func (s *Item) DeleteItem(ctx context.Context, id int) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}

func itemFromParams(id int, params *types.ItemParams) *model.Item {
	return &model.Item{
		ID:          id,
		Name:        params.Name,
		Type:        params.Type,
		Act:         params.Act,
		SourceType:  params.SourceType,
		Rarity:      params.Rarity,
		Description: params.Description,
		Image:       params.Image,
		WikiLink:    params.WikiLink,
		MerchantID:  params.MerchantID,
		QuestID:     params.QuestID,
		PoiID:       params.PoiID,
		NpcID:       params.NpcID,
	}
}
