package service

import (
	"context"

	"github.com/LeJxrxm/bg3-planner/internal/model"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/repo"
)

type Character struct {
	CharacterRepo *repo.Character
}

func NewCharacter(characterRepo *repo.Character) *Character {
	return &Character{
		CharacterRepo: characterRepo,
	}
}

func (s *Character) GetCharacters(ctx context.Context, page types.PageRequest) ([]*model.Character, int, error) {
	return s.CharacterRepo.GetCharacters(ctx, page)
}

func (s *Character) GetCharacterById(ctx context.Context, id int) (*model.Character, error) {
	return s.CharacterRepo.GetCharacterById(ctx, id)
}

func (s *Character) CreateCharacter(ctx context.Context, params *types.CharacterParams) (*model.Character, error) {
	return s.CharacterRepo.CreateCharacter(ctx, &model.Character{
		Name:     params.Name,
		Class:    params.Class,
		Subclass: params.Subclass,
		Image:    params.Image,
	})
}

func (s *Character) UpdateCharacter(ctx context.Context, id int, params *types.CharacterParams) (*model.Character, error) {
	return s.CharacterRepo.UpdateCharacter(ctx, &model.Character{
		ID:       id,
		Name:     params.Name,
		Class:    params.Class,
		Subclass: params.Subclass,
		Image:    params.Image,
	})
}

func (s *Character) DeleteCharacter(ctx context.Context, id int) error {
	return s.CharacterRepo.DeleteCharacter(ctx, id)
}
