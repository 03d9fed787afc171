package rekuest_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

func TestValidStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid params pass", func(t *testing.T) {
		err := rekuest.ValidStruct(&types.ItemParams{
			Name:       "Helldusk Armour",
			Type:       "armor",
			Act:        3,
			SourceType: "QUEST",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown source type", func(t *testing.T) {
		err := rekuest.ValidStruct(&types.ItemParams{
			Name:       "Helldusk Armour",
			Type:       "armor",
			Act:        3,
			SourceType: "SHRINE",
		})
		require.Error(t, err)

		e, ok := err.(*pgerr.PlannerError)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, e.StatusCode)
		assert.Equal(t, pgerr.CodeInvalidRequest, e.ErrorCode)

		require.NotNil(t, e.Extras)
		violations, ok := (*e.Extras)["violations"].([]*rekuest.ErrorResponse)
		require.True(t, ok)
		require.Len(t, violations, 1)
		assert.Equal(t, "oneof", violations[0].Violation)
	})

	t.Run("rejects out of range act", func(t *testing.T) {
		err := rekuest.ValidStruct(&types.SourceParams{
			Name: "Dammon",
			Act:  4,
		})
		require.Error(t, err)

		e, ok := err.(*pgerr.PlannerError)
		require.True(t, ok)
		violations, ok := (*e.Extras)["violations"].([]*rekuest.ErrorResponse)
		require.True(t, ok)
		require.Len(t, violations, 1)
		assert.Equal(t, "max", violations[0].Violation)
	})

	t.Run("collects multiple violations", func(t *testing.T) {
		err := rekuest.ValidStruct(&types.ItemParams{})
		require.Error(t, err)

		e, ok := err.(*pgerr.PlannerError)
		require.True(t, ok)
		violations, ok := (*e.Extras)["violations"].([]*rekuest.ErrorResponse)
		require.True(t, ok)
		// name, type, act, sourceType
		assert.Len(t, violations, 4)
	})
}

func TestPathID(t *testing.T) {
	t.Parallel()

	var gotID int
	var gotErr error
	app := fiber.New()
	app.Get("/things/:id", func(ctx *fiber.Ctx) error {
		gotID, gotErr = rekuest.PathID(ctx, "id")
		return ctx.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name    string
		path    string
		id      int
		wantErr bool
	}{
		{"positive integer", "/things/42", 42, false},
		{"zero", "/things/0", 0, true},
		{"negative", "/things/-3", 0, true},
		{"not a number", "/things/abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			if tt.wantErr {
				require.Error(t, gotErr)

				e, ok := gotErr.(*pgerr.PlannerError)
				require.True(t, ok)
				assert.Equal(t, fiber.StatusBadRequest, e.StatusCode)
				assert.Equal(t, pgerr.CodeInvalidRequest, e.ErrorCode)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.id, gotID)
		})
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()

	var got types.PageRequest
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		got = rekuest.Pagination(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name  string
		query string
		want  types.PageRequest
	}{
		{"defaults", "", types.PageRequest{Page: 1, PageSize: 20}},
		{"explicit", "?page=3&itemsPerPage=50", types.PageRequest{Page: 3, PageSize: 50}},
		{"pageSize alias", "?page=2&pageSize=5", types.PageRequest{Page: 2, PageSize: 5}},
		{"itemsPerPage wins over alias", "?itemsPerPage=10&pageSize=99", types.PageRequest{Page: 1, PageSize: 10}},
		{"garbage falls back", "?page=zero&itemsPerPage=-1", types.PageRequest{Page: 1, PageSize: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}
