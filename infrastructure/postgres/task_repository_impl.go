package postgres

import (
	"context"

	"gorm.io/gorm"

	"taskman/domain/models"
	"taskman/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("AssignedPerson").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	// ใช้ Select ระบุ column ชัดเจน เพราะ Updates ข้าม zero values
	// (completed=false กับ enddate=nil ต้องถูกเขียนทับด้วย)
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", task.ID).
		Select("name", "description", "completed", "start_date", "end_date").
		Updates(map[string]interface{}{
			"name":        task.Name,
			"description": task.Description,
			"completed":   task.Completed,
			"start_date":  task.StartDate,
			"end_date":    task.EndDate,
		}).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
