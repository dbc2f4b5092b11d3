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

type PersonServiceImpl struct {
	personRepo repositories.PersonRepository
	notifier   ports.NotificationPublisher // optional, nil = notifications disabled
}

func NewPersonService(personRepo repositories.PersonRepository, notifier ports.NotificationPublisher) services.PersonService {
	return &PersonServiceImpl{
		personRepo: personRepo,
		notifier:   notifier,
	}
}

func (s *PersonServiceImpl) Create(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error) {
	if err := validatePersonName(req.Name); err != nil {
		return nil, err
	}

	// early exit ถ้าชื่อซ้ำ - ตัวตัดสินจริงคือ unique index ตอน insert
	existing, _ := s.personRepo.GetByName(ctx, req.Name)
	if existing != nil {
		logger.WarnContext(ctx, "Person name already exists", "name", req.Name)
		return nil, apperrors.ErrPersonNameTaken
	}

	person := &models.Person{
		Name: req.Name,
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Person name taken at insert", "name", req.Name)
			return nil, apperrors.ErrPersonNameTaken
		}
		logger.ErrorContext(ctx, "Failed to create person", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Person created", "person_id", person.ID, "name", person.Name)
	s.notify(ctx, fmt.Sprintf("PERSON CREATE: %s", person.Name))
	return person, nil
}

func (s *PersonServiceImpl) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Person not found", "person_id", id)
			return nil, apperrors.ErrPersonNotFound
		}
		logger.ErrorContext(ctx, "Failed to get person", "person_id", id, "error", err)
		return nil, err
	}
	return person, nil
}

func (s *PersonServiceImpl) List(ctx context.Context) ([]*models.Person, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list persons", "error", err)
		return nil, err
	}
	return persons, nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdatePersonRequest) (*models.Person, error) {
	if err := validatePersonName(req.Name); err != nil {
		return nil, err
	}

	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Person not found for update", "person_id", id)
			return nil, apperrors.ErrPersonNotFound
		}
		logger.ErrorContext(ctx, "Failed to get person for update", "person_id", id, "error", err)
		return nil, err
	}

	person.Name = req.Name
	if err := s.personRepo.Update(ctx, person); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Person name taken at update", "name", req.Name)
			return nil, apperrors.ErrPersonNameTaken
		}
		logger.ErrorContext(ctx, "Failed to update person", "person_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Person updated", "person_id", id, "name", person.Name)
	s.notify(ctx, fmt.Sprintf("PERSON UPDATED: %s", person.Name))
	return person, nil
}

func (s *PersonServiceImpl) Delete(ctx context.Context, id uint) error {
	_, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Person not found for deletion", "person_id", id)
			return apperrors.ErrPersonNotFound
		}
		logger.ErrorContext(ctx, "Failed to get person for deletion", "person_id", id, "error", err)
		return err
	}

	// repo ลบ tasks ของ person ก่อนแล้วค่อยลบ person ใน transaction เดียว
	if err := s.personRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete person", "person_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Person deleted", "person_id", id)
	s.notify(ctx, fmt.Sprintf("PERSON (ID: %d) DELETED", id))
	return nil
}

// notify ส่ง notification แบบ fire-and-forget
// publish fail ไม่ทำให้ CRUD operation ล้มเหลว
func (s *PersonServiceImpl) notify(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, message); err != nil {
		logger.WarnContext(ctx, "Failed to publish notification", "message", message, "error", err)
	}
}
