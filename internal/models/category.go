package models

// Category groups products. Deleting a category is not exposed by the API.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null" validate:"required,min=1,max=100"`
}
