package models

// CategoryModel groups catalog entries for filtering.
type CategoryModel struct {
	Base
	Name          string             `json:"name" gorm:"uniqueIndex;not null"`
	Slug          string             `json:"slug" gorm:"uniqueIndex;not null"`
	Icon          string             `json:"icon"`
	Subcategories []SubcategoryModel `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }

// SubcategoryModel is a child of a category.
type SubcategoryModel struct {
	Base
	CategoryID string `json:"category_id" gorm:"index;not null"`
	Name       string `json:"name"        gorm:"not null"`
	Slug       string `json:"slug"        gorm:"index;not null"`
}

func (SubcategoryModel) TableName() string { return "subcategories" }
