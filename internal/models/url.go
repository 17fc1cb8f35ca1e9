package models

import "time"

// URLHashLength длина hex представления SHA-256 дайджеста.
const URLHashLength = 64

// URL структура модели хранения закладки.
//
// Дедупликация идет по полю URLHash: на одну (обрезанную по пробелам) строку URL
// в хранилище существует максимум одна запись.
type URL struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url" gorm:"not null"`
	URLHash   string    `json:"urlHash" gorm:"size:64;not null;uniqueIndex"`
}

func (URL) TableName() string {
	return "urls"
}

// URLTag связь многие-ко-многим между закладкой и тегом.
// Пара (URLID, TagID) уникальна, повторная привязка игнорируется.
type URLTag struct {
	ID    uint `json:"id" gorm:"primaryKey"`
	URLID uint `json:"urlId" gorm:"not null;uniqueIndex:idx_url_tags_url_id_tag_id"`
	TagID uint `json:"tagId" gorm:"not null;uniqueIndex:idx_url_tags_url_id_tag_id"`
}

func (URLTag) TableName() string {
	return "url_tags"
}
