package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Dashboard struct {
	RunRepo       *repo.Run
	ItemRepo      *repo.Item
	CharacterRepo *repo.Character
	QuestRepo     *repo.Quest
	MerchantRepo  *repo.Merchant
	PoiRepo       *repo.Poi
	NpcRepo       *repo.Npc
}

func NewDashboard(
	runRepo *repo.Run,
	itemRepo *repo.Item,
	characterRepo *repo.Character,
	questRepo *repo.Quest,
	merchantRepo *repo.Merchant,
	poiRepo *repo.Poi,
	npcRepo *repo.Npc,
) *Dashboard {
	return &Dashboard{
		RunRepo:       runRepo,
		ItemRepo:      itemRepo,
		CharacterRepo: characterRepo,
		QuestRepo:     questRepo,
		MerchantRepo:  merchantRepo,
		PoiRepo:       poiRepo,
		NpcRepo:       npcRepo,
	}
}

// GetStats counts every entity table concurrently.
func (s *Dashboard) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	var stats types.DashboardStats

	eg, ctx := errgroup.WithContext(ctx)
	count := func(dst *int, fn func(context.Context) (int, error)) {
		eg.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.Runs, s.RunRepo.Count)
	count(&stats.Items, s.ItemRepo.Count)
	count(&stats.Characters, s.CharacterRepo.Count)
	count(&stats.Quests, s.QuestRepo.Count)
	count(&stats.Merchants, s.MerchantRepo.Count)
	count(&stats.Pois, s.PoiRepo.Count)
	count(&stats.Npcs, s.NpcRepo.Count)

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
