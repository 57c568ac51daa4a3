package dto

import (
	"github.com/google/uuid"

	"carserv/internal/domains/admin/model"
	"carserv/shared/constant"
	gModel "carserv/shared/model"
	"carserv/shared/timezone"
)

type CreateAdminRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *CreateAdminRequest) ToModel() model.Admin {
	return model.Admin{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Password: c.Password,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r *AdminResponse) FromModel(admin model.Admin) {
	r.ID = admin.ID
	r.Email = admin.Email
}
