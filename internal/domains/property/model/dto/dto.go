package dto

import (
	"roam/internal/domains/property/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/money"
	"roam/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title       string  `json:"title"        validate:"required,max=150"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	NightlyRate int64   `json:"nightly_rate" validate:"required,gt=0"`
	Currency    string  `json:"currency"     validate:"required,len=3"`
	MaxGuests   int     `json:"max_guests"   validate:"required,min=1"`
	Status      string  `json:"status"       validate:"omitempty,oneof=available booked cancelled inactive upcoming"`
}

func (r *CreatePropertyRequest) ToModel(hostID string) model.Property {
	status := r.Status
	if status == "" {
		status = constant.ResourceStatusAvailable
	}

	return model.Property{
		ID:          uuid.NewString(),
		HostID:      hostID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		NightlyRate: money.Amount(r.NightlyRate),
		Currency:    r.Currency,
		MaxGuests:   r.MaxGuests,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  hostID,
			ModifiedBy: hostID,
		},
	}
}

type UpdatePropertyRequest struct {
	Title       *string `db:"title"        json:"title,omitempty"        validate:"omitempty,max=150"`
	Description *string `db:"description"  json:"description,omitempty"`
	Location    *string `db:"location"     json:"location,omitempty"`
	NightlyRate *int64  `db:"nightly_rate" json:"nightly_rate,omitempty" validate:"omitempty,gt=0"`
	MaxGuests   *int    `db:"max_guests"   json:"max_guests,omitempty"   validate:"omitempty,min=1"`
	Status      *string `db:"status"       json:"status,omitempty"       validate:"omitempty,oneof=available booked cancelled inactive upcoming"`
}

type PropertyResponse struct {
	ID          string  `json:"id"`
	HostID      string  `json:"host_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	NightlyRate int64   `json:"nightly_rate"`
	Currency    string  `json:"currency"`
	MaxGuests   int     `json:"max_guests"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.HostID = model.HostID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.NightlyRate = int64(model.NightlyRate)
	r.Currency = model.Currency
	r.MaxGuests = model.MaxGuests
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
