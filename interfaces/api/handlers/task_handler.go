package handlers

import (
	"taskman/domain/dto"
	"taskman/domain/services"
	"taskman/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask สร้าง task ใหม่ assigned ให้ person ตาม query param
// POST /api/v1/tasks?person_id=1
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	personID := c.QueryInt("person_id")
	if personID < 1 {
		return utils.BadRequestResponse(c, "Invalid or missing person_id")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	task, err := h.taskService.Create(c.UserContext(), uint(personID), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// GetTask ดึง task ตาม ID
// GET /api/v1/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// ListTasks ดึง tasks ทั้งหมด
// GET /api/v1/tasks
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.List(c.UserContext())
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskListResponse{
		Tasks: dto.TasksToTaskResponses(tasks),
	})
}

// UpdateTask แทนที่ mutable fields ของ task (เปลี่ยน assignment ไม่ได้)
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	task, err := h.taskService.Update(c.UserContext(), uint(id), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask ลบ task ตาม ID
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.Delete(c.UserContext(), uint(id)); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}
