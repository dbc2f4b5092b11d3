package services

import (
	"context"

	"taskman/domain/dto"
	"taskman/domain/models"
)

type TaskService interface {
	// Create สร้าง task ใหม่ assigned ให้ person ที่ระบุ (person ต้องมีอยู่จริง)
	Create(ctx context.Context, personID uint, req *dto.CreateTaskRequest) (*models.Task, error)

	// GetByID ดึง task ตาม ID
	GetByID(ctx context.Context, id uint) (*models.Task, error)

	// List ดึง tasks ทั้งหมด
	List(ctx context.Context) ([]*models.Task, error)

	// Update แทนที่ mutable fields ทั้งหมด (assignment เปลี่ยนไม่ได้)
	Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error)

	// Delete ลบ task ตาม ID
	Delete(ctx context.Context, id uint) error
}
