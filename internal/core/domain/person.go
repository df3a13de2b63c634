package domain

import "fmt"

// Person is a roster entry with a name and a favourite food.
type Person struct {
	Name string
	Food string
}

// NewPerson builds a Person from descriptor attributes.
// The name attribute is required; food defaults to the empty string.
func NewPerson(attrs Attributes) (*Person, error) {
	name, err := requireString(attrs, "name")
	if err != nil {
		return nil, err
	}
	food, err := optionalString(attrs, "food", "")
	if err != nil {
		return nil, err
	}
	return &Person{Name: name, Food: food}, nil
}

// Kind implements Record.
func (p *Person) Kind() RecordKind { return KindPerson }

// Fields implements Record.
func (p *Person) Fields() []Field {
	return []Field{
		{Name: "name", Value: p.Name},
		{Name: "food", Value: p.Food},
	}
}

// Summary implements Record.
func (p *Person) Summary() []string {
	return []string{
		fmt.Sprintf("user's name is %q and their favorite food is %q", p.Name, p.Food),
	}
}
