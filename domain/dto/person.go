package dto

import (
	"taskman/domain/models"
)

// === Requests ===

type CreatePersonRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type UpdatePersonRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// === Responses ===

type PersonResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Tasks []TaskResponse `json:"tasks"`
}

type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
}

// === Mappers ===

func PersonToPersonResponse(person *models.Person) *PersonResponse {
	if person == nil {
		return nil
	}
	resp := &PersonResponse{
		ID:    person.ID,
		Name:  person.Name,
		Tasks: make([]TaskResponse, len(person.Tasks)),
	}
	for i, task := range person.Tasks {
		taskCopy := task
		resp.Tasks[i] = *TaskToTaskResponse(&taskCopy)
	}
	return resp
}

func PersonsToPersonResponses(persons []*models.Person) []PersonResponse {
	responses := make([]PersonResponse, len(persons))
	for i, person := range persons {
		responses[i] = *PersonToPersonResponse(person)
	}
	return responses
}
