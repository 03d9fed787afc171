package types

import "gopkg.in/guregu/null.v3"

type CharacterParams struct {
	Name     string      `json:"name" validate:"required,min=1"`
	Class    null.String `json:"class" swaggertype:"string"`
	Subclass null.String `json:"subclass" swaggertype:"string"`
	Image    null.String `json:"image" swaggertype:"string"`
}
