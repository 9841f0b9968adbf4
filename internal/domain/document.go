package domain

// Document is the identity document of a person.
type Document struct {
	PersonID int64
	Type     string
	Number   string
	Country  string
}
