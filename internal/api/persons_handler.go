package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/personas-api/internal/api/shared"
	"github.com/phrazzld/personas-api/internal/domain"
	"github.com/phrazzld/personas-api/internal/platform/logger"
	"github.com/phrazzld/personas-api/internal/service"
)

// PersonsHandler serves the /personas routes.
type PersonsHandler struct {
	persons       service.PersonsService
	documents     service.DocumentService
	phones        service.PhoneService
	addresses     service.AddressService
	relationships service.RelationshipService
	logger        *slog.Logger
}

// NewPersonsHandler creates a new PersonsHandler
func NewPersonsHandler(
	persons service.PersonsService,
	documents service.DocumentService,
	phones service.PhoneService,
	addresses service.AddressService,
	relationships service.RelationshipService,
	logger *slog.Logger,
) *PersonsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonsHandler")
	}

	return &PersonsHandler{
		persons:       persons,
		documents:     documents,
		phones:        phones,
		addresses:     addresses,
		relationships: relationships,
		logger:        logger.With(slog.String("component", "persons_handler")),
	}
}

// Routes registers every /personas route on r.
func (h *PersonsHandler) Routes(r chi.Router) {
	r.Route("/personas", func(r chi.Router) {
		r.Get("/", h.GetAllPersons)
		r.Post("/", h.PostPerson)

		r.Route("/{userId}", func(r chi.Router) {
			r.Get("/", h.GetPersonByID)
			r.Put("/", h.UpdatePersonByID)
			r.Delete("/", h.DeletePersonByID)

			r.Get("/documento", h.GetDocumentByUserID)
			r.Get("/direccion", h.GetAddressByUserID)
			r.Get("/telefono", h.GetPhoneByUserID)

			r.Get("/padre", h.GetParentRelation)
			r.Post("/padre/{childId}", h.SetParentRelation)
			r.Get("/relacion/{userId2}", h.GetRelationBetween)
		})
	})
}

// GetAllPersons handles GET /personas
func (h *PersonsHandler) GetAllPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.GetAllPersons(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to list persons")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ToPersonDTOs(persons))
}

// PostPerson handles POST /personas
// The response body echoes the submitted DTO rather than re-reading the
// stored person.
func (h *PersonsHandler) PostPerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var body PersonDTO
	if err := shared.DecodeJSON(r, &body); err != nil {
		log.Debug("invalid person payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := validateBody(&body); err != nil {
		HandleAPIError(w, r, err, http.StatusBadRequest, "")
		return
	}

	person, err := ToPersonEntity(body)
	if err != nil {
		HandleAPIError(w, r, err, http.StatusBadRequest, "")
		return
	}

	created, err := h.persons.PostPerson(r.Context(), person)
	if err == nil && created == nil {
		err = errors.New("persons service returned no person")
	}
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to create person")
		return
	}

	log.Debug("person created", slog.Int64("person_id", created.ID))
	shared.RespondCreated(w, r, fmt.Sprintf("/personas/%d", created.ID), body)
}

// DeletePersonByID handles DELETE /personas/{userId}
func (h *PersonsHandler) DeletePersonByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	err := h.persons.DeletePersonByID(r.Context(), userID)
	if errors.Is(err, service.ErrPersonNotFound) {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to delete person")
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}

// GetPersonByID handles GET /personas/{userId}
func (h *PersonsHandler) GetPersonByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	person, found, err := h.persons.GetPersonByID(r.Context(), userID)
	respondOptional(w, r, found, err, func() interface{} { return ToPersonDTO(person) })
}

// UpdatePersonByID handles PUT /personas/{userId}
// Any failure, an absent person included, is reported as 500.
func (h *PersonsHandler) UpdatePersonByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	var body PersonDTO
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := validateBody(&body); err != nil {
		HandleAPIError(w, r, err, http.StatusBadRequest, "")
		return
	}

	person, err := ToPersonEntity(body)
	if err != nil {
		HandleAPIError(w, r, err, http.StatusBadRequest, "")
		return
	}

	updated, err := h.persons.UpdatePersonByID(r.Context(), userID, person)
	if err == nil && updated == nil {
		err = errors.New("persons service returned no person")
	}
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to update person")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ToPersonDTO(updated))
}

// GetDocumentByUserID handles GET /personas/{userId}/documento
func (h *PersonsHandler) GetDocumentByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	doc, found, err := h.documents.GetDocumentByUserID(r.Context(), userID)
	respondOptional(w, r, found, err, func() interface{} { return ToDocumentDTO(doc) })
}

// GetAddressByUserID handles GET /personas/{userId}/direccion
func (h *PersonsHandler) GetAddressByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	addr, found, err := h.addresses.GetAddressByUserID(r.Context(), userID)
	respondOptional(w, r, found, err, func() interface{} { return ToAddressDTO(addr) })
}

// GetPhoneByUserID handles GET /personas/{userId}/telefono
func (h *PersonsHandler) GetPhoneByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	phone, found, err := h.phones.GetPhoneByUserID(r.Context(), userID)
	respondOptional(w, r, found, err, func() interface{} { return ToPhoneDTO(phone) })
}

// SetParentRelation handles POST /personas/{userId}/padre/{childId}
// The Location header has no slash between "padre" and the child ID; clients
// already depend on that form.
func (h *PersonsHandler) SetParentRelation(w http.ResponseWriter, r *http.Request) {
	parentID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}
	childID, ok := handlePathID(w, r, "childId")
	if !ok {
		return
	}

	if err := h.relationships.SetParentRelation(r.Context(), parentID, childID); err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to set parent relation")
		return
	}

	shared.RespondCreated(w, r, fmt.Sprintf("/personas/%d/padre%d", parentID, childID), nil)
}

// GetParentRelation handles GET /personas/{userId}/padre
func (h *PersonsHandler) GetParentRelation(w http.ResponseWriter, r *http.Request) {
	parentID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	parent, found, err := h.persons.GetPersonByID(r.Context(), parentID)
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to retrieve person")
		return
	}
	if !found {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	children, err := h.relationships.GetChildren(r.Context(), parentID)
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to retrieve children")
		return
	}

	rel := domain.ParentRelation{Parent: parent, Children: children}
	shared.RespondWithJSON(w, r, http.StatusOK, ToParentRelationDTO(rel))
}

// GetRelationBetween handles GET /personas/{userId}/relacion/{userId2}
// Any failure, unknown persons included, is reported as 500.
func (h *PersonsHandler) GetRelationBetween(w http.ResponseWriter, r *http.Request) {
	userID1, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}
	userID2, ok := handlePathID(w, r, "userId2")
	if !ok {
		return
	}

	rel, err := h.relationships.GetRelationBetween(r.Context(), userID1, userID2)
	if err == nil && rel == nil {
		err = errors.New("relationship service returned no relation")
	}
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "Failed to resolve relation")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ToRelativeRelationDTO(rel))
}

// respondOptional applies the get-by-id contract: an error is a 500, an
// absent value a bodyless 404, and a present one a 200 with the DTO that
// toDTO builds.
func respondOptional(w http.ResponseWriter, r *http.Request, found bool, err error, toDTO func() interface{}) {
	if err != nil {
		HandleAPIError(w, r, err, http.StatusInternalServerError, "")
		return
	}
	if !found {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toDTO())
}
