// Package person implements the object-orientation exercise: a small
// record type with read-only behaviors and no mutation after construction.
package person

import "fmt"

// AdultAge is the age at which IsAdult reports true
const AdultAge = 18

// Person is an immutable name/age record
type Person struct {
	Name string
	Age  int
}

// New creates a new Person
func New(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// Greeting returns the person's self-introduction
func (p Person) Greeting() string {
	return fmt.Sprintf("Hallo, ich bin %s und %d Jahre alt.", p.Name, p.Age)
}

// IsAdult reports whether the person is of age
func (p Person) IsAdult() bool {
	return p.Age >= AdultAge
}
