package services

import "strings"

// ParseTagList разбирает строку тегов через запятую в список имен.
// Каждый элемент обрезается по пробелам, пустые выбрасываются молча -
// хвостовые запятые вида "a,,b, " не ошибка, из них получится {a, b}.
// Сырая строка дальше этой границы не уходит, в модель попадают только имена.
func ParseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
