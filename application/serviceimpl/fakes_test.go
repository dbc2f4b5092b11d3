package serviceimpl

import (
	"context"

	"gorm.io/gorm"

	"taskman/domain/models"
)

// ========== Fake Publisher ==========

type fakePublisher struct {
	messages   []string
	publishErr error
}

func (p *fakePublisher) Publish(ctx context.Context, message string) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.messages = append(p.messages, message)
	return nil
}

// ========== Fake Person Repository ==========

// fakePersonRepo in-memory repo ที่เลียนแบบ behavior ของ GORM
// (ErrRecordNotFound, ErrDuplicatedKey จาก unique index)
type fakePersonRepo struct {
	persons   map[uint]*models.Person
	nextID    uint
	taskRepo  *fakeTaskRepo // สำหรับ cascade delete
	createErr error
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[uint]*models.Person)}
}

func (r *fakePersonRepo) Create(ctx context.Context, person *models.Person) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, p := range r.persons {
		if p.Name == person.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	person.ID = r.nextID
	r.persons[person.ID] = person
	return nil
}

func (r *fakePersonRepo) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	person, ok := r.persons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return person, nil
}

func (r *fakePersonRepo) GetByName(ctx context.Context, name string) (*models.Person, error) {
	for _, p := range r.persons {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonRepo) List(ctx context.Context) ([]*models.Person, error) {
	persons := make([]*models.Person, 0, len(r.persons))
	for id := uint(1); id <= r.nextID; id++ {
		if p, ok := r.persons[id]; ok {
			persons = append(persons, p)
		}
	}
	return persons, nil
}

func (r *fakePersonRepo) Update(ctx context.Context, person *models.Person) error {
	if _, ok := r.persons[person.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, p := range r.persons {
		if id != person.ID && p.Name == person.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.persons[person.ID] = person
	return nil
}

func (r *fakePersonRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.persons[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	// cascade: ลบ tasks ของ person ก่อน
	if r.taskRepo != nil {
		for taskID, task := range r.taskRepo.tasks {
			if task.AssignedPersonID == id {
				delete(r.taskRepo.tasks, taskID)
			}
		}
	}
	delete(r.persons, id)
	return nil
}

// ========== Fake Task Repository ==========

type fakeTaskRepo struct {
	tasks      map[uint]*models.Task
	nextID     uint
	personRepo *fakePersonRepo // สำหรับ preload AssignedPerson
	createErr  error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*models.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// preload assigned person เหมือน repo จริง
	if r.personRepo != nil {
		if person, ok := r.personRepo.persons[task.AssignedPersonID]; ok {
			task.AssignedPerson = *person
		}
	}
	return task, nil
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(r.tasks))
	for id := uint(1); id <= r.nextID; id++ {
		if task, ok := r.tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.tasks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.tasks, id)
	return nil
}
