package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,max=255"`
	Description string `gorm:"type:varchar(500)" json:"description" validate:"max=500"`

	// ProductCount is derived via subquery on list/show, never stored
	ProductCount int64 `gorm:"->;-:migration" json:"product_count"`

	// Relasi
	Products []Product `json:"products,omitempty"`
}
