package domain

// Address is the postal address of a person.
type Address struct {
	PersonID   int64
	Street     string
	Number     string
	City       string
	Province   string
	PostalCode string
	Country    string
}
