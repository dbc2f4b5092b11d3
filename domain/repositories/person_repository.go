package repositories

import (
	"context"

	"taskman/domain/models"
)

type PersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	GetByName(ctx context.Context, name string) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	// Delete ลบ person พร้อม tasks ทั้งหมดของเขาใน transaction เดียว
	Delete(ctx context.Context, id uint) error
}
