package domain

import (
	"strconv"
	"strings"
)

// Ключи параметров поиска, которые понимает сервис.
const (
	KeyMinArea     = "min_area"
	KeyMaxArea     = "max_area"
	KeyLocations   = "locations"
	KeyMinBedrooms = "min_bedrooms"
	KeyMaxBedrooms = "max_bedrooms"
)

// Criteria - набор необязательных фильтров одного поискового запроса.
// nil / пустой срез означает "без ограничения по полю".
type Criteria struct {
	MinArea     *int
	MaxArea     *int
	Locations   []string
	MinBedrooms *int
	MaxBedrooms *int
}

// IsEmpty - true, если не задан ни один фильтр.
func (c Criteria) IsEmpty() bool {
	return c.MinArea == nil && c.MaxArea == nil && len(c.Locations) == 0 &&
		c.MinBedrooms == nil && c.MaxBedrooms == nil
}

// ParseCriteria извлекает фильтры из параметров запроса (url.Values подходит напрямую).
// Неизвестные ключи игнорируются. Первое нечисловое (или не влезающее в int32)
// значение числового ключа возвращается как *InvalidCriterionError, до любого
// обращения к хранилищу.
func ParseCriteria(values map[string][]string) (Criteria, error) {
	var c Criteria

	intKeys := []struct {
		key    string
		target **int
	}{
		{KeyMinArea, &c.MinArea},
		{KeyMaxArea, &c.MaxArea},
		{KeyMinBedrooms, &c.MinBedrooms},
		{KeyMaxBedrooms, &c.MaxBedrooms},
	}

	for _, k := range intKeys {
		raw, ok := firstValue(values, k.key)
		if !ok {
			continue
		}
		// колонки в таблице - INTEGER, поэтому значение должно влезать в int4
		parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return Criteria{}, &InvalidCriterionError{Key: k.key, Value: raw, Err: err}
		}
		n := int(parsed)
		*k.target = &n
	}

	for _, loc := range values[KeyLocations] {
		if loc == "" {
			continue
		}
		c.Locations = append(c.Locations, loc)
	}

	return c, nil
}

func firstValue(values map[string][]string, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
