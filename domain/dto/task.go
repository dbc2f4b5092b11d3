package dto

import (
	"taskman/domain/models"
)

// === Requests ===

type CreateTaskRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description string  `json:"description" validate:"max=100"`
	Completed   bool    `json:"completed"`
	StartDate   string  `json:"startdate" validate:"required"`
	EndDate     *string `json:"enddate"`
}

// UpdateTaskRequest แทนที่ field ทั้งหมดยกเว้น id กับ assigned person
type UpdateTaskRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description string  `json:"description" validate:"max=100"`
	Completed   bool    `json:"completed"`
	StartDate   string  `json:"startdate" validate:"required"`
	EndDate     *string `json:"enddate"`
}

// === Responses ===

type TaskResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Completed        bool    `json:"completed"`
	StartDate        string  `json:"startdate"`
	EndDate          *string `json:"enddate"`
	AssignedPersonID uint    `json:"assigned_person_id"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// === Mappers ===

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:               task.ID,
		Name:             task.Name,
		Description:      task.Description,
		Completed:        task.Completed,
		StartDate:        task.StartDate,
		EndDate:          task.EndDate,
		AssignedPersonID: task.AssignedPersonID,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}
