package models

import "time"

// Snippet текстовый фрагмент, сохраненный со страницы.
//
// Поле URL хранит адрес страницы-источника как обычную строку: фрагмент можно
// сохранить и с незакладенной страницы. Дедупликации нет намеренно - каждое
// выделение пользователя сохраняется отдельной записью.
type Snippet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url" gorm:"not null"`
	Snippet   string    `json:"snippet" gorm:"type:text;not null"`
}

func (Snippet) TableName() string {
	return "snippets"
}

// SnippetTag связь многие-ко-многим между фрагментом и тегом.
type SnippetTag struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	SnippetID uint `json:"snippetId" gorm:"not null;uniqueIndex:idx_snippet_tags_snippet_id_tag_id"`
	TagID     uint `json:"tagId" gorm:"not null;uniqueIndex:idx_snippet_tags_snippet_id_tag_id"`
}

func (SnippetTag) TableName() string {
	return "snippet_tags"
}
