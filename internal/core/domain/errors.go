package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidCriterion - значение фильтра не удалось привести к нужному типу.
	ErrInvalidCriterion = errors.New("invalid search criterion")

	// ErrStoreUnavailable - хранилище недоступно или запрос не выполнился.
	ErrStoreUnavailable = errors.New("listing store unavailable")
)

// InvalidCriterionError описывает конкретный неверный параметр поиска.
type InvalidCriterionError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidCriterionError) Error() string {
	if errors.Is(e.Err, strconv.ErrRange) {
		return fmt.Sprintf("invalid value %q for %s: out of range [%d, %d]", e.Value, e.Key, math.MinInt32, math.MaxInt32)
	}
	return fmt.Sprintf("invalid value %q for %s: expected an integer", e.Value, e.Key)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalidCriterion).
func (e *InvalidCriterionError) Is(target error) bool {
	return target == ErrInvalidCriterion
}

func (e *InvalidCriterionError) Unwrap() error {
	return e.Err
}
