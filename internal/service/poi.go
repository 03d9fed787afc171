package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Poi struct {
	PoiRepo *repo.Poi
}

func NewPoi(poiRepo *repo.Poi) *Poi {
	return &Poi{
		PoiRepo: poiRepo,
	}
}

func (s *Poi) GetPois(ctx context.Context, page types.PageRequest) ([]*model.Poi, int, error) {
	return s.PoiRepo.GetPois(ctx, page)
}

func (s *Poi) GetPoiById(ctx context.Context, id int) (*model.Poi, error) {
	return s.PoiRepo.GetPoiById(ctx, id)
}

func (s *Poi) CreatePoi(ctx context.Context, params *types.SourceParams) (*model.Poi, error) {
	return s.PoiRepo.CreatePoi(ctx, &model.Poi{
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Poi) UpdatePoi(ctx context.Context, id int, params *types.SourceParams) (*model.Poi, error) {
	return s.PoiRepo.UpdatePoi(ctx, &model.Poi{
		ID:       id,
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Poi) DeletePoi(ctx context.Context, id int) error {
	return s.PoiRepo.DeletePoi(ctx, id)
}
