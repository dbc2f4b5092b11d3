package handlers

import (
	"taskman/domain/dto"
	"taskman/domain/services"
	"taskman/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PersonHandler struct {
	personService services.PersonService
}

func NewPersonHandler(personService services.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// CreatePerson สร้าง person ใหม่
// POST /api/v1/persons
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	person, err := h.personService.Create(c.UserContext(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.PersonToPersonResponse(person))
}

// GetPerson ดึง person ตาม ID พร้อม tasks ที่ assigned
// GET /api/v1/persons/:id
func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid person ID")
	}

	person, err := h.personService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.PersonToPersonResponse(person))
}

// ListPersons ดึง persons ทั้งหมด
// GET /api/v1/persons
func (h *PersonHandler) ListPersons(c *fiber.Ctx) error {
	persons, err := h.personService.List(c.UserContext())
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.PersonListResponse{
		Persons: dto.PersonsToPersonResponses(persons),
	})
}

// UpdatePerson แทนที่ชื่อของ person
// PUT /api/v1/persons/:id
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid person ID")
	}

	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	person, err := h.personService.Update(c.UserContext(), uint(id), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.PersonToPersonResponse(person))
}

// DeletePerson ลบ person พร้อม tasks ของเขาทั้งหมด
// DELETE /api/v1/persons/:id
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid person ID")
	}

	if err := h.personService.Delete(c.UserContext(), uint(id)); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}
