package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Merchant struct {
	MerchantRepo *repo.Merchant
}

func NewMerchant(merchantRepo *repo.Merchant) *Merchant {
	return &Merchant{
		MerchantRepo: merchantRepo,
	}
}

func (s *Merchant) GetMerchants(ctx context.Context, page types.PageRequest) ([]*model.Merchant, int, error) {
	return s.MerchantRepo.GetMerchants(ctx, page)
}

func (s *Merchant) GetMerchantById(ctx context.Context, id int) (*model.Merchant, error) {
	return s.MerchantRepo.GetMerchantById(ctx, id)
}

func (s *Merchant) CreateMerchant(ctx context.Context, params *types.SourceParams) (*model.Merchant, error) {
	return s.MerchantRepo.CreateMerchant(ctx, &model.Merchant{
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Merchant) UpdateMerchant(ctx context.Context, id int, params *types.SourceParams) (*model.Merchant, error) {
	return s.MerchantRepo.UpdateMerchant(ctx, &model.Merchant{
		ID:       id,
		Name:     params.Name,
		Act:      params.Act,
		PosX:     params.PosX,
		PosY:     params.PosY,
		WikiLink: params.WikiLink,
		Image:    params.Image,
	})
}

func (s *Merchant) DeleteMerchant(ctx context.Context, id int) error {
	return s.MerchantRepo.DeleteMerchant(ctx, id)
}
