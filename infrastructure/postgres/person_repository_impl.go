package postgres

import (
	"context"

	"gorm.io/gorm"

	"taskman/domain/models"
	"taskman/domain/repositories"
)

type PersonRepositoryImpl struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &PersonRepositoryImpl{db: db}
}

func (r *PersonRepositoryImpl) Create(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *PersonRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Preload("Tasks").Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepositoryImpl) GetByName(ctx context.Context, name string) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepositoryImpl) List(ctx context.Context) ([]*models.Person, error) {
	var persons []*models.Person
	err := r.db.WithContext(ctx).Preload("Tasks").Find(&persons).Error
	return persons, err
}

func (r *PersonRepositoryImpl) Update(ctx context.Context, person *models.Person) error {
	// อัปเดตเฉพาะ name column - entity อาจถูก preload Tasks มาด้วย
	// Save ทั้ง struct จะไปแตะ association rows โดยไม่จำเป็น
	return r.db.WithContext(ctx).Model(&models.Person{}).
		Where("id = ?", person.ID).
		Update("name", person.Name).Error
}

func (r *PersonRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// ลบ tasks ของ person ก่อนแล้วค่อยลบ person ใน transaction เดียว (atomic cascade)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assigned_person_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Person{}).Error
	})
}
