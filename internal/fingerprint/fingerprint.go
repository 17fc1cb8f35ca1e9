package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sum возвращает SHA-256 дайджест строки в виде hex (64 символа).
//
// Перед хешированием строка обрезается по краям от пробельных символов, больше
// никакой нормализации нет: схемы, завершающие слеши и порядок query параметров
// не трогаем, поэтому "https://a.com" и "https://a.com/" - две разные записи.
func Sum(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
