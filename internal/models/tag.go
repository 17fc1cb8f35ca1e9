package models

// Tag пользовательская метка. Имена уникальны и регистрозависимы.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

func (Tag) TableName() string {
	return "tags"
}
