package handlers

import (
	"taskman/domain/apperrors"
	"taskman/domain/services"
	"taskman/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// Services contains all the services needed for handlers
type Services struct {
	PersonService services.PersonService
	TaskService   services.TaskService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	PersonHandler *PersonHandler
	TaskHandler   *TaskHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		PersonHandler: NewPersonHandler(services.PersonService),
		TaskHandler:   NewTaskHandler(services.TaskService),
	}
}

// serviceErrorResponse map domain error code เป็น HTTP status
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeValidation, apperrors.CodeDuplicateName:
		return utils.BadRequestResponse(c, err.Error())
	case apperrors.CodeDateFormat:
		return utils.UnprocessableEntityResponse(c, err.Error())
	case apperrors.CodeNotFound:
		return utils.NotFoundResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
