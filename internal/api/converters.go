package api

import (
	"time"

	"github.com/phrazzld/personas-api/internal/domain"
)

// BirthDateLayout is the wire format of PersonDTO.BirthDate.
const BirthDateLayout = time.DateOnly

// ToPersonDTO converts a domain.Person to its wire form.
func ToPersonDTO(p *domain.Person) PersonDTO {
	dto := PersonDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
	if p.BirthDate != nil {
		dto.BirthDate = p.BirthDate.Format(BirthDateLayout)
	}
	if p.Document != nil {
		doc := ToDocumentDTO(p.Document)
		dto.Document = &doc
	}
	if p.Address != nil {
		addr := ToAddressDTO(p.Address)
		dto.Address = &addr
	}
	if p.Phone != nil {
		phone := ToPhoneDTO(p.Phone)
		dto.Phone = &phone
	}
	return dto
}

// ToPersonDTOs converts persons preserving order. The result is never nil.
func ToPersonDTOs(persons []*domain.Person) []PersonDTO {
	dtos := make([]PersonDTO, 0, len(persons))
	for _, p := range persons {
		dtos = append(dtos, ToPersonDTO(p))
	}
	return dtos
}

// ToPersonEntity converts a PersonDTO to a domain.Person.
// It fails only when BirthDate is set and not a YYYY-MM-DD date.
func ToPersonEntity(dto PersonDTO) (*domain.Person, error) {
	p := &domain.Person{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
	}
	if dto.BirthDate != "" {
		birth, err := time.Parse(BirthDateLayout, dto.BirthDate)
		if err != nil {
			return nil, domain.NewValidationError("fechaNacimiento", "must be a date in YYYY-MM-DD format", domain.ErrValidation)
		}
		p.BirthDate = &birth
	}
	if dto.Document != nil {
		p.Document = ToDocumentEntity(*dto.Document)
	}
	if dto.Address != nil {
		p.Address = ToAddressEntity(*dto.Address)
	}
	if dto.Phone != nil {
		p.Phone = ToPhoneEntity(*dto.Phone)
	}
	return p, nil
}

// ToDocumentDTO converts a domain.Document to its wire form.
func ToDocumentDTO(d *domain.Document) DocumentDTO {
	return DocumentDTO{
		PersonID: d.PersonID,
		Type:     d.Type,
		Number:   d.Number,
		Country:  d.Country,
	}
}

// ToDocumentEntity converts a DocumentDTO to a domain.Document.
func ToDocumentEntity(dto DocumentDTO) *domain.Document {
	return &domain.Document{
		PersonID: dto.PersonID,
		Type:     dto.Type,
		Number:   dto.Number,
		Country:  dto.Country,
	}
}

// ToAddressDTO converts a domain.Address to its wire form.
func ToAddressDTO(a *domain.Address) AddressDTO {
	return AddressDTO{
		PersonID:   a.PersonID,
		Street:     a.Street,
		Number:     a.Number,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// ToAddressEntity converts an AddressDTO to a domain.Address.
func ToAddressEntity(dto AddressDTO) *domain.Address {
	return &domain.Address{
		PersonID:   dto.PersonID,
		Street:     dto.Street,
		Number:     dto.Number,
		City:       dto.City,
		Province:   dto.Province,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
	}
}

// ToPhoneDTO converts a domain.Phone to its wire form.
func ToPhoneDTO(p *domain.Phone) PhoneDTO {
	return PhoneDTO{
		PersonID: p.PersonID,
		Type:     p.Type,
		Number:   p.Number,
	}
}

// ToPhoneEntity converts a PhoneDTO to a domain.Phone.
func ToPhoneEntity(dto PhoneDTO) *domain.Phone {
	return &domain.Phone{
		PersonID: dto.PersonID,
		Type:     dto.Type,
		Number:   dto.Number,
	}
}

// ToParentRelationDTO converts a parent relation, keeping the children order.
func ToParentRelationDTO(rel domain.ParentRelation) ParentRelationDTO {
	return ParentRelationDTO{
		Parent:   ToPersonDTO(rel.Parent),
		Children: ToPersonDTOs(rel.Children),
	}
}

// ToRelativeRelationDTO converts a relative relation.
func ToRelativeRelationDTO(rel *domain.RelativeRelation) RelativeRelationDTO {
	return RelativeRelationDTO{
		Person1:  ToPersonDTO(rel.Person1),
		Person2:  ToPersonDTO(rel.Person2),
		Relation: rel.Relation,
	}
}
