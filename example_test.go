package fromstr_test

import (
	"errors"
	"fmt"

	"github.com/viant/fromstr"
)

func ExampleParsePerson() {
	person, err := fromstr.ParsePerson("Mark,20")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(person.Name, person.Age)
	// Output: Mark 20
}

func ExampleParse() {
	_, err := fromstr.Parse[fromstr.Person]("John,32,man")
	fmt.Println(errors.Is(err, fromstr.ErrBadLen))
	// Output: true
}
