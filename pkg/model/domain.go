package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Attribute is one of the six categories of the puzzle. The declaration order is the canonical rank used by the indexer
type Attribute int

const (
	NationalityAttribute Attribute = iota
	ColorAttribute
	BeverageAttribute
	CigarAttribute
	PetAttribute
	HouseAttribute // Ordinal hub attribute, its values are positions
)

const (
	// Size is the number of values of every attribute (and the number of houses)
	Size uint64 = 5
	// Attributes is the number of attributes
	Attributes = 6
	// Propositions is the number of (attribute-pair, value-pair) combinations: C(6, 2) * Size * Size
	Propositions uint64 = Attributes * (Attributes - 1) / 2 * Size * Size
)

var attributeNames = []string{"nationality", "color", "beverage", "cigar", "pet", "house"}

var valueNames = [][]string{
	{"brit", "swede", "dane", "norwegian", "german"},
	{"red", "green", "yellow", "blue", "white"},
	{"tea", "coffee", "milk", "beer", "water"},
	{"pallmall", "dunhill", "blends", "bluemasters", "prince"},
	{"dogs", "birds", "cats", "horse", "fish"},
}

// CategoricalAttributes lists every attribute except the house position, in canonical order
var CategoricalAttributes = []Attribute{
	NationalityAttribute,
	ColorAttribute,
	BeverageAttribute,
	CigarAttribute,
	PetAttribute,
}

// AllAttributes lists every attribute in canonical order
var AllAttributes = append(slices.Clone(CategoricalAttributes), HouseAttribute)

func (attribute Attribute) String() string {
	if !attribute.valid() {
		return fmt.Sprintf("attribute(%d)", int(attribute))
	}
	return attributeNames[attribute]
}

func (attribute Attribute) valid() bool {
	return attribute >= NationalityAttribute && attribute <= HouseAttribute
}

// ParseAttribute resolves an attribute from its name (e.g. "color")
func ParseAttribute(name string) (Attribute, error) {
	index := slices.Index(attributeNames, strings.ToLower(strings.TrimSpace(name)))
	if index < 0 {
		return 0, fmt.Errorf("unknown attribute \"%v\"", name)
	}
	return Attribute(index), nil
}

// Value is a sum type over the values of every attribute. It is implemented only by Nationality, Color, Beverage,
// Cigar, Pet and Position
type Value interface {
	Attribute() Attribute
	Index() uint64
	String() string
	value()
}

type (
	Nationality uint64
	Color       uint64
	Beverage    uint64
	Cigar       uint64
	Pet         uint64
	Position    uint64
)

const (
	Brit Nationality = iota
	Swede
	Dane
	Norwegian
	German
)

const (
	Red Color = iota
	Green
	Yellow
	Blue
	White
)

const (
	Tea Beverage = iota
	Coffee
	Milk
	Beer
	Water
)

const (
	PallMall Cigar = iota
	Dunhill
	Blends
	BlueMasters
	Prince
)

const (
	Dogs Pet = iota
	Birds
	Cats
	Horse
	Fish
)

func (Nationality) Attribute() Attribute { return NationalityAttribute }
func (Color) Attribute() Attribute       { return ColorAttribute }
func (Beverage) Attribute() Attribute    { return BeverageAttribute }
func (Cigar) Attribute() Attribute       { return CigarAttribute }
func (Pet) Attribute() Attribute         { return PetAttribute }
func (Position) Attribute() Attribute    { return HouseAttribute }

func (n Nationality) Index() uint64 { return uint64(n) }
func (c Color) Index() uint64       { return uint64(c) }
func (b Beverage) Index() uint64    { return uint64(b) }
func (c Cigar) Index() uint64       { return uint64(c) }
func (p Pet) Index() uint64         { return uint64(p) }
func (p Position) Index() uint64    { return uint64(p) }

func (n Nationality) String() string { return valueName(n) }
func (c Color) String() string       { return valueName(c) }
func (b Beverage) String() string    { return valueName(b) }
func (c Cigar) String() string       { return valueName(c) }
func (p Pet) String() string         { return valueName(p) }
func (p Position) String() string    { return strconv.FormatUint(uint64(p), 10) }

func (Nationality) value() {}
func (Color) value()       {}
func (Beverage) value()    {}
func (Cigar) value()       {}
func (Pet) value()         {}
func (Position) value()    {}

func valueName(value Value) string {
	if value.Index() >= Size {
		return fmt.Sprintf("%v(%d)", value.Attribute(), value.Index())
	}
	return valueNames[value.Attribute()][value.Index()]
}

// inDomain checks whether the value is a well-formed member of its attribute's domain
func inDomain(value Value) bool {
	return value != nil && value.Attribute().valid() && value.Index() < Size
}

// newValue builds the value of the given attribute at the given index
func newValue(attribute Attribute, index uint64) Value {
	switch attribute {
	case NationalityAttribute:
		return Nationality(index)
	case ColorAttribute:
		return Color(index)
	case BeverageAttribute:
		return Beverage(index)
	case CigarAttribute:
		return Cigar(index)
	case PetAttribute:
		return Pet(index)
	case HouseAttribute:
		return Position(index)
	}
	panic(fmt.Sprintf("unknown attribute %d", int(attribute)))
}

// Values returns the domain of the attribute in index order
func Values(attribute Attribute) []Value {
	values := make([]Value, 0, Size)
	for index := range Size {
		values = append(values, newValue(attribute, index))
	}
	return values
}

// ParseValue resolves a value from its name, positions are given as integers (e.g. "brit", "red", "3")
func ParseValue(attribute Attribute, name string) (Value, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !attribute.valid() {
		return nil, fmt.Errorf("unknown attribute %d", int(attribute))
	}

	if attribute == HouseAttribute {
		position, err := strconv.ParseUint(name, 10, 64)
		if err != nil || position >= Size {
			return nil, fmt.Errorf("invalid house position \"%v\"", name)
		}
		return Position(position), nil
	}

	index := slices.Index(valueNames[attribute], name)
	if index < 0 {
		return nil, fmt.Errorf("unknown %v \"%v\"", attribute, name)
	}
	return newValue(attribute, uint64(index)), nil
}

// ParseOperand resolves an "attribute=value" operand (e.g. "nationality=brit", "house=0")
func ParseOperand(operand string) (Value, error) {
	attributeName, valueName, ok := strings.Cut(operand, "=")
	if !ok {
		return nil, fmt.Errorf("operand \"%v\" must have the form attribute=value", operand)
	}
	attribute, err := ParseAttribute(attributeName)
	if err != nil {
		return nil, err
	}
	return ParseValue(attribute, valueName)
}

// Operand renders a value the way ParseOperand reads it
func Operand(value Value) string {
	return fmt.Sprintf("%v=%v", value.Attribute(), value)
}
