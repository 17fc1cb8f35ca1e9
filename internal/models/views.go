package models

// Проекции для чтения. Собираются агрегирующими запросами и никогда
// не пишутся обратно в хранилище.

// URLWithTags закладка с именами тегов в порядке создания привязок.
// DisplayURL - адрес без query строки, удобен для рендера списка.
type URLWithTags struct {
	URL        string   `json:"url"`
	DisplayURL string   `json:"displayUrl"`
	Tags       []string `json:"tags"`
}

// SnippetWithTags фрагмент с полным списком его тегов.
type SnippetWithTags struct {
	ID      uint     `json:"id"`
	URL     string   `json:"url"`
	Snippet string   `json:"snippet"`
	Tags    []string `json:"tags"`
}

// TagWithURLsAndSnippets тег со всеми привязанными закладками и фрагментами.
// Каждый фрагмент несет свой собственный список тегов, а не только группирующий,
// чтобы рендер мог показать пересечения тегов.
type TagWithURLsAndSnippets struct {
	Tag      string            `json:"tag"`
	URLs     []string          `json:"urls"`
	Snippets []SnippetWithTags `json:"snippets"`
}
