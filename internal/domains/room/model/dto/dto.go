package dto

import (
	"roombook/internal/domains/room/model"
	"roombook/shared"
	gDto "roombook/shared/dto"
)

// Sortable lists the sort keys accepted by the room listing.
var Sortable = gDto.Sortable{
	"name":     model.TableName + "." + model.FieldName,
	"location": model.TableName + "." + model.FieldLocation,
}

const DefaultSort = "name"

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Content       []RoomResponse `json:"content"`
	Page          int            `json:"page"`
	PageSize      int            `json:"pageSize"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData int, params gDto.QueryParams) {
	r.Page = params.Page
	r.PageSize = params.Limit
	r.TotalElements = totalData
	r.TotalPages = shared.CalculateTotalPage(totalData, params.Limit)

	r.Content = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Content[i].FromModel(mod)
	}
}
