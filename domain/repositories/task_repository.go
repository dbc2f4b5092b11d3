package repositories

import (
	"context"

	"taskman/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	// Update แทนที่ mutable fields เท่านั้น (ห้ามเปลี่ยน assigned_person_id)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
}
