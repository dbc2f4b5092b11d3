package routes

import (
	"github.com/gofiber/fiber/v2"
	"taskman/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")

	tasks.Get("/", h.TaskHandler.ListTasks)        // ดึง tasks ทั้งหมด
	tasks.Post("/", h.TaskHandler.CreateTask)      // สร้าง task ใหม่ (?person_id=)
	tasks.Get("/:id", h.TaskHandler.GetTask)       // ดึง task ตาม ID
	tasks.Put("/:id", h.TaskHandler.UpdateTask)    // แทนที่ fields ของ task
	tasks.Delete("/:id", h.TaskHandler.DeleteTask) // ลบ task
}
