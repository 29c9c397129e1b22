package dtos

type CreateOperatorRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Sector  *string `json:"sector,omitempty" validate:"omitempty,max=255"`
	Website *string `json:"website,omitempty" validate:"omitempty,max=2048"`
	Notes   *string `json:"notes,omitempty"`
}

// UpdateOperatorRequest is a partial patch. Nil fields are left unchanged.
type UpdateOperatorRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Sector  *string `json:"sector,omitempty" validate:"omitempty,max=255"`
	Website *string `json:"website,omitempty" validate:"omitempty,max=2048"`
	Notes   *string `json:"notes,omitempty"`
}
