package services

// defaultListLimit ограничивает размер выборки, когда клиент не задал limit.
const defaultListLimit = 100

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
