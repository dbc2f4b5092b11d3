package services

import (
	"context"

	"taskman/domain/dto"
	"taskman/domain/models"
)

type PersonService interface {
	// Create สร้าง person ใหม่ (validate + ตรวจชื่อซ้ำ)
	Create(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error)

	// GetByID ดึง person ตาม ID พร้อม tasks
	GetByID(ctx context.Context, id uint) (*models.Person, error)

	// List ดึง persons ทั้งหมด
	List(ctx context.Context) ([]*models.Person, error)

	// Update แทนที่ name (validate เหมือน create)
	Update(ctx context.Context, id uint, req *dto.UpdatePersonRequest) (*models.Person, error)

	// Delete ลบ person พร้อม cascade ลบ tasks ของเขา
	Delete(ctx context.Context, id uint) error
}
