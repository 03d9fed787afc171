package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"github.com/LeJxrxm/bg3-planner/internal/util"
)

type rarityHolder struct {
	Rarity null.String `validate:"omitempty,oneof=COMMON RARE LEGENDARY"`
}

func TestNullStringUnwrapping(t *testing.T) {
	t.Parallel()

	validate := util.NewValidator()

	// an absent nullable passes omitempty
	assert.NoError(t, validate.Struct(&rarityHolder{}))

	// a present nullable validates its inner value
	assert.NoError(t, validate.Struct(&rarityHolder{Rarity: null.StringFrom("RARE")}))
	assert.Error(t, validate.Struct(&rarityHolder{Rarity: null.StringFrom("MYTHIC")}))
}

type actHolder struct {
	Act null.Int `validate:"omitempty,min=1,max=3"`
}

func TestNullIntUnwrapping(t *testing.T) {
	t.Parallel()

	validate := util.NewValidator()

	assert.NoError(t, validate.Struct(&actHolder{}))
	assert.NoError(t, validate.Struct(&actHolder{Act: null.IntFrom(2)}))
	assert.Error(t, validate.Struct(&actHolder{Act: null.IntFrom(9)}))
}
