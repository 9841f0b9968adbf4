package api

// PersonDTO is the wire form of a person. Documento, Direccion and Telefono
// are accepted on create and update; reads serve them from their own routes.
type PersonDTO struct {
	ID        int64        `json:"id,omitempty"`
	FirstName string       `json:"nombre"`
	LastName  string       `json:"apellido"`
	BirthDate string       `json:"fechaNacimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email     string       `json:"email,omitempty"`
	Document  *DocumentDTO `json:"documento,omitempty"`
	Address   *AddressDTO  `json:"direccion,omitempty"`
	Phone     *PhoneDTO    `json:"telefono,omitempty"`
}

// DocumentDTO is the wire form of an identity document.
type DocumentDTO struct {
	PersonID int64  `json:"personaId,omitempty"`
	Type     string `json:"tipo"`
	Number   string `json:"numero"`
	Country  string `json:"pais,omitempty"`
}

// AddressDTO is the wire form of a postal address.
type AddressDTO struct {
	PersonID   int64  `json:"personaId,omitempty"`
	Street     string `json:"calle"`
	Number     string `json:"numero"`
	City       string `json:"ciudad"`
	Province   string `json:"provincia,omitempty"`
	PostalCode string `json:"codigoPostal,omitempty"`
	Country    string `json:"pais,omitempty"`
}

// PhoneDTO is the wire form of a phone.
type PhoneDTO struct {
	PersonID int64  `json:"personaId,omitempty"`
	Type     string `json:"tipo"`
	Number   string `json:"numero"`
}

// ParentRelationDTO lists a parent and its children.
type ParentRelationDTO struct {
	Parent   PersonDTO   `json:"parent"`
	Children []PersonDTO `json:"children"`
}

// RelativeRelationDTO describes how Person1 relates to Person2.
type RelativeRelationDTO struct {
	Person1  PersonDTO `json:"person1"`
	Person2  PersonDTO `json:"person2"`
	Relation string    `json:"relation"`
}
