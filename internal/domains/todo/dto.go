package todo

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTodoRequest is the payload for creating a new item. TodoID,
// CreatedAt and the attachment URL are always assigned server-side.
type CreateTodoRequest struct {
	Name     string `json:"name"`
	DueDate  string `json:"dueDate"`
	Category string `json:"category,omitempty"`
}

func (r CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.DueDate,
			validation.Required.Error("dueDate is required"),
			validation.Date("2006-01-02").Error("dueDate must be a YYYY-MM-DD date"),
		),
		validation.Field(&r.Category,
			validation.Length(0, 100),
		),
	)
}

// UpdateTodoRequest replaces the four mutable fields of an item.
type UpdateTodoRequest struct {
	Name      string `json:"name"`
	DueDate   string `json:"dueDate"`
	Done      bool   `json:"done"`
	Important bool   `json:"important"`
}

func (r UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.DueDate,
			validation.Required.Error("dueDate is required"),
			validation.Date("2006-01-02").Error("dueDate must be a YYYY-MM-DD date"),
		),
	)
}

// GenerateUploadURLResponse wraps the presigned URL handed back to clients.
type GenerateUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}
