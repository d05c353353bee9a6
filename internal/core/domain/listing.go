package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout - формат календарной даты в обмене (ISO-8601).
const DateLayout = "2006-01-02"

// Listing - одно объявление о недвижимости.
// Все поля, кроме ID, могут быть NULL в хранилище.
type Listing struct {
	ID            int64
	HouseSize     *int
	HouseLocation *string
	Bedrooms      *int
	Bathrooms     *int
	Price         *Money
	DateAdded     *time.Time
}

var moneyPattern = regexp.MustCompile(`^(-?)(\d+)(?:\.(\d+))?$`)

// Money - денежная сумма с фиксированной точкой.
// Хранится как каноническая десятичная строка, чтобы не терять точность на float64.
type Money struct {
	text string
}

// ParseMoney разбирает десятичную строку ("150000", "99.5", "12.345").
// Дробная часть дополняется нулями минимум до двух знаков.
func ParseMoney(s string) (Money, error) {
	m := moneyPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Money{}, fmt.Errorf("invalid decimal amount %q", s)
	}
	sign, intPart, frac := m[1], strings.TrimLeft(m[2], "0"), m[3]
	if intPart == "" {
		intPart = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if intPart == "0" && strings.Trim(frac, "0") == "" {
		sign = "" // "-0.00" -> "0.00"
	}
	return Money{text: sign + intPart + "." + frac}, nil
}

// MustParseMoney - как ParseMoney, но паникует. Для тестов и сидов.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String возвращает десятичное представление с минимум двумя знаками после точки.
func (m Money) String() string {
	if m.text == "" {
		return "0.00"
	}
	return m.text
}

// Equal сравнивает суммы по значению ("1.50" == "1.500").
func (m Money) Equal(other Money) bool {
	return m.normalized() == other.normalized()
}

func (m Money) normalized() string {
	s := m.String()
	dot := strings.IndexByte(s, '.')
	for len(s) > dot+3 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
