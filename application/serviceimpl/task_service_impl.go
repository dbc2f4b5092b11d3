package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskman/domain/apperrors"
	"taskman/domain/dto"
	"taskman/domain/models"
	"taskman/domain/ports"
	"taskman/domain/repositories"
	"taskman/domain/services"
	"taskman/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo   repositories.TaskRepository
	personRepo repositories.PersonRepository
	notifier   ports.NotificationPublisher // optional, nil = notifications disabled
}

func NewTaskService(taskRepo repositories.TaskRepository, personRepo repositories.PersonRepository, notifier ports.NotificationPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:   taskRepo,
		personRepo: personRepo,
		notifier:   notifier,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, personID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := validateTaskFields(req.Name, req.Description, req.Completed, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	// assigned person ต้องมีอยู่จริงทุกครั้งที่สร้าง task
	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Person not found for task creation", "person_id", personID)
			return nil, apperrors.ErrPersonNotFound
		}
		logger.ErrorContext(ctx, "Failed to get person for task creation", "person_id", personID, "error", err)
		return nil, err
	}

	task := &models.Task{
		Name:             req.Name,
		Description:      req.Description,
		Completed:        req.Completed,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AssignedPersonID: personID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "person_id", personID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "person_id", personID)
	s.notify(ctx, fmt.Sprintf("TASK CREATE: %s, PERSON ASSIGNED: %s", task.Name, person.Name))
	return task, nil
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found", "task_id", id)
			return nil, apperrors.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", id, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if err := validateTaskFields(req.Name, req.Description, req.Completed, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found for update", "task_id", id)
			return nil, apperrors.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to get task for update", "task_id", id, "error", err)
		return nil, err
	}

	// assignment เปลี่ยนไม่ได้ จึงไม่ต้องตรวจ person ซ้ำตอน update
	task.Name = req.Name
	task.Description = req.Description
	task.Completed = req.Completed
	task.StartDate = req.StartDate
	task.EndDate = req.EndDate

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	s.notify(ctx, fmt.Sprintf("TASK UPDATED: %s, PERSON ASSIGNED: %s", task.Name, task.AssignedPerson.Name))
	return task, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id uint) error {
	_, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", id)
			return apperrors.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to get task for deletion", "task_id", id, "error", err)
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	s.notify(ctx, fmt.Sprintf("TASK ID %d DELETED", id))
	return nil
}

// notify ส่ง notification แบบ fire-and-forget
func (s *TaskServiceImpl) notify(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, message); err != nil {
		logger.WarnContext(ctx, "Failed to publish notification", "message", message, "error", err)
	}
}
