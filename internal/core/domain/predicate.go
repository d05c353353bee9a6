package domain

import "fmt"

// Field - колонка схемы объявлений, по которой можно фильтровать.
type Field string

const (
	FieldID            Field = "id"
	FieldHouseSize     Field = "house_size"
	FieldHouseLocation Field = "house_location"
	FieldBedrooms      Field = "bedrooms"
	FieldBathrooms     Field = "bathrooms"
	FieldPrice         Field = "price"
	FieldDateAdded     Field = "date_added"
)

// ListingFields - все колонки таблицы в порядке выборки.
var ListingFields = []Field{
	FieldID, FieldHouseSize, FieldHouseLocation, FieldBedrooms,
	FieldBathrooms, FieldPrice, FieldDateAdded,
}

// Operator - оператор сравнения в ограничении.
type Operator string

const (
	OpGte Operator = ">="
	OpLte Operator = "<="
	OpIn  Operator = "IN"
)

// Constraint - одно сравнение {поле, оператор, значение}.
// Для OpGte/OpLte Value имеет тип int, для OpIn - []string.
type Constraint struct {
	Field    Field
	Operator Operator
	Value    interface{}
}

// String - читаемая форма для логов: "house_size >= 1000".
func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Operator, c.Value)
}

// Predicate - конъюнкция ограничений. Пустой предикат совпадает со всем.
type Predicate struct {
	constraints []Constraint
}

// NewPredicate собирает предикат из готового списка ограничений.
func NewPredicate(constraints ...Constraint) Predicate {
	return Predicate{constraints: append([]Constraint(nil), constraints...)}
}

// Constraints возвращает копию списка ограничений.
func (p Predicate) Constraints() []Constraint {
	return append([]Constraint(nil), p.constraints...)
}

func (p Predicate) IsEmpty() bool {
	return len(p.constraints) == 0
}

// Strings возвращает ограничения в виде строк, в порядке построения.
func (p Predicate) Strings() []string {
	out := make([]string, 0, len(p.constraints))
	for _, c := range p.constraints {
		out = append(out, c.String())
	}
	return out
}

// BuildPredicate переводит Criteria в предикат.
// Нижняя и верхняя граница одного поля остаются двумя отдельными ограничениями.
func BuildPredicate(c Criteria) Predicate {
	var cs []Constraint

	if c.MinArea != nil {
		cs = append(cs, Constraint{Field: FieldHouseSize, Operator: OpGte, Value: *c.MinArea})
	}
	if c.MaxArea != nil {
		cs = append(cs, Constraint{Field: FieldHouseSize, Operator: OpLte, Value: *c.MaxArea})
	}
	if len(c.Locations) > 0 {
		locations := append([]string(nil), c.Locations...)
		cs = append(cs, Constraint{Field: FieldHouseLocation, Operator: OpIn, Value: locations})
	}
	if c.MinBedrooms != nil {
		cs = append(cs, Constraint{Field: FieldBedrooms, Operator: OpGte, Value: *c.MinBedrooms})
	}
	if c.MaxBedrooms != nil {
		cs = append(cs, Constraint{Field: FieldBedrooms, Operator: OpLte, Value: *c.MaxBedrooms})
	}

	return Predicate{constraints: cs}
}

// Matches вычисляет предикат в памяти.
// NULL-поле не удовлетворяет ни одному ограничению, как и в SQL.
func (p Predicate) Matches(l Listing) bool {
	for _, c := range p.constraints {
		if !c.matches(l) {
			return false
		}
	}
	return true
}

func (c Constraint) matches(l Listing) bool {
	switch c.Field {
	case FieldHouseSize:
		return compareInt(l.HouseSize, c.Operator, c.Value)
	case FieldBedrooms:
		return compareInt(l.Bedrooms, c.Operator, c.Value)
	case FieldBathrooms:
		return compareInt(l.Bathrooms, c.Operator, c.Value)
	case FieldHouseLocation:
		if l.HouseLocation == nil || c.Operator != OpIn {
			return false
		}
		set, _ := c.Value.([]string)
		for _, v := range set {
			if v == *l.HouseLocation {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func compareInt(field *int, op Operator, value interface{}) bool {
	bound, ok := value.(int)
	if field == nil || !ok {
		return false
	}
	switch op {
	case OpGte:
		return *field >= bound
	case OpLte:
		return *field <= bound
	default:
		return false
	}
}
