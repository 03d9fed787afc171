package rekuest

import (
	"strconv"

	locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/LeJxrxm/bg3-planner/internal/constant"
	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/util"
)

var Validate = util.NewValidator()

var translator ut.Translator

func init() {
	en := locale.New()
	translator, _ = ut.New(en, en).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	var fe validator.FieldError

	for i := 0; i < len(ve); i++ {
		fe = ve[i]

		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return pgerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(dest)
}

func ValidStruct(dest any) error {
	if err := validateStruct(dest); err != nil {
		return pgerr.NewInvalidViolations(err)
	}

	return nil
}

// PathID parses the named route parameter as a positive integer id.
func PathID(ctx *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil || id <= 0 {
		return 0, pgerr.ErrInvalidReq.Msg("invalid %s: expect a positive integer", name)
	}
	return id, nil
}

// Pagination derives the page window from the query string. Both
// `itemsPerPage` and its older alias `pageSize` are honored; unparsable or
// out-of-range values fall back to the defaults instead of failing.
func Pagination(ctx *fiber.Ctx) types.PageRequest {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	rawSize := ctx.Query("itemsPerPage", ctx.Query("pageSize"))
	size, err := strconv.Atoi(rawSize)
	if err != nil || size < 1 {
		size = constant.DefaultPageSize
	}

	return types.PageRequest{Page: page, PageSize: size}
}
