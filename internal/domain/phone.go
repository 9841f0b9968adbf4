package domain

// Phone is the contact phone of a person.
type Phone struct {
	PersonID int64
	Type     string
	Number   string
}
