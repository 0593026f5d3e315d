package dto

import (
	identityModel "roam/internal/domains/identity/model"
	"roam/internal/domains/user/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"omitempty,oneof=admin host user"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:            uuid.NewString(),
		Email:         r.Email,
		Password:      hashedPassword,
		Role:          role,
		AccountStatus: string(identityModel.AccountStatusPendingVerification),
		FullName:      r.FullName,
		Phone:         r.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	AccountStatus string  `json:"account_status"`
	FullName      *string `json:"full_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	LastLogin     *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.AccountStatus = string(identityModel.NormalizeAccountStatus(model.AccountStatus))
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role          *string `db:"role"           json:"role,omitempty"           validate:"omitempty,oneof=admin host user"`
	AccountStatus *string `db:"account_status" json:"account_status,omitempty" validate:"omitempty,oneof=active suspended deleted pending_verification"`
	FullName      *string `db:"full_name"      json:"full_name,omitempty"`
	Phone         *string `db:"phone"          json:"phone,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
