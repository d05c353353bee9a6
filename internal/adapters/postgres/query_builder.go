package postgres_adapter

import (
	"fmt"
	"listing-service/internal/core/domain"
	"math"
	"strings"
)

// columnByField - закрытый список колонок; в SQL попадают только они.
var columnByField = map[domain.Field]string{
	domain.FieldID:            "id",
	domain.FieldHouseSize:     "house_size",
	domain.FieldHouseLocation: "house_location",
	domain.FieldBedrooms:      "bedrooms",
	domain.FieldBathrooms:     "bathrooms",
	domain.FieldPrice:         "price",
	domain.FieldDateAdded:     "date_added",
}

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// build возвращает WHERE (или пустую строку) и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyPredicate переводит каждое ограничение предиката в отдельное условие.
// Две границы одного поля дают два условия: "house_size >= $1 AND house_size <= $2".
func applyPredicate(predicate domain.Predicate) (string, []interface{}, error) {
	qb := newQueryBuilder()

	for _, c := range predicate.Constraints() {
		column, ok := columnByField[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter field %q", c.Field)
		}

		switch c.Operator {
		case domain.OpGte, domain.OpLte:
			bound, err := int4Bound(c)
			if err != nil {
				return "", nil, err
			}
			qb.addCondition("%s "+string(c.Operator)+" $%d", column, bound)
		case domain.OpIn:
			values, ok := c.Value.([]string)
			if !ok {
				return "", nil, fmt.Errorf("IN filter on %q expects a list of strings, got %T", c.Field, c.Value)
			}
			qb.addCondition("%s = ANY($%d)", column, values)
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", c.Operator)
		}
	}

	where, args := qb.build()
	return where, args, nil
}

// int4Bound проверяет числовую границу: параметр сравнения с INTEGER-колонкой
// pgx кодирует как int4, и большее значение упадет уже в базе.
func int4Bound(c domain.Constraint) (int, error) {
	n, ok := c.Value.(int)
	if !ok {
		return 0, fmt.Errorf("%s filter on %q expects an integer, got %T", c.Operator, c.Field, c.Value)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%s filter on %q: %d does not fit into int4", c.Operator, c.Field, n)
	}
	return n, nil
}
