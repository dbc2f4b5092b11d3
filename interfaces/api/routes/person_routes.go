package routes

import (
	"github.com/gofiber/fiber/v2"
	"taskman/interfaces/api/handlers"
)

func SetupPersonRoutes(api fiber.Router, h *handlers.Handlers) {
	persons := api.Group("/persons")

	persons.Get("/", h.PersonHandler.ListPersons)      // ดึง persons ทั้งหมด
	persons.Post("/", h.PersonHandler.CreatePerson)    // สร้าง person ใหม่
	persons.Get("/:id", h.PersonHandler.GetPerson)     // ดึง person ตาม ID
	persons.Put("/:id", h.PersonHandler.UpdatePerson)  // แทนที่ชื่อ person
	persons.Delete("/:id", h.PersonHandler.DeletePerson) // ลบ person + tasks ของเขา
}
