package dto

import (
	"roam/internal/domains/tour/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/money"
	"roam/shared/timezone"

	"github.com/google/uuid"
)

type CreateTourRequest struct {
	Title       string  `json:"title"        validate:"required,max=150"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Price       int64   `json:"price"        validate:"required,gt=0"`
	Currency    string  `json:"currency"     validate:"required,len=3"`
	MaxCapacity int     `json:"max_capacity" validate:"required,min=1"`
	Status      string  `json:"status"       validate:"omitempty,oneof=available booked cancelled inactive upcoming"`
}

func (r *CreateTourRequest) ToModel(hostID string) model.Tour {
	status := r.Status
	if status == "" {
		status = constant.ResourceStatusUpcoming
	}

	return model.Tour{
		ID:          uuid.NewString(),
		HostID:      hostID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Price:       money.Amount(r.Price),
		Currency:    r.Currency,
		MaxCapacity: r.MaxCapacity,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  hostID,
			ModifiedBy: hostID,
		},
	}
}

type UpdateTourRequest struct {
	Title       *string `db:"title"        json:"title,omitempty"        validate:"omitempty,max=150"`
	Description *string `db:"description"  json:"description,omitempty"`
	Location    *string `db:"location"     json:"location,omitempty"`
	Price       *int64  `db:"price"        json:"price,omitempty"        validate:"omitempty,gt=0"`
	MaxCapacity *int    `db:"max_capacity" json:"max_capacity,omitempty" validate:"omitempty,min=1"`
	Status      *string `db:"status"       json:"status,omitempty"       validate:"omitempty,oneof=available booked cancelled inactive upcoming"`
}

type TourResponse struct {
	ID          string  `json:"id"`
	HostID      string  `json:"host_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Price       int64   `json:"price"`
	Currency    string  `json:"currency"`
	MaxCapacity int     `json:"max_capacity"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(model model.Tour) {
	r.ID = model.ID
	r.HostID = model.HostID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.Price = int64(model.Price)
	r.Currency = model.Currency
	r.MaxCapacity = model.MaxCapacity
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
