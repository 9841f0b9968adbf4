package domain

import "time"

// Person is a registered individual. Document, Address and Phone are only
// populated on write paths, where they carry contact data to be stored
// alongside the person; reads fetch them through their own services.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	BirthDate *time.Time
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Document *Document
	Address  *Address
	Phone    *Phone
}

// HasContactData reports whether any nested contact record is attached.
func (p *Person) HasContactData() bool {
	return p.Document != nil || p.Address != nil || p.Phone != nil
}
