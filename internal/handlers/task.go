package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/demanda-dev/demanda/internal/models"
	"github.com/demanda-dev/demanda/internal/types"
	"github.com/demanda-dev/demanda/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTaskRequest struct {
	Title     string  `json:"title" binding:"required"`
	StartDate *string `json:"start_date"`
	DueDate   *string `json:"due_date"`
}

func taskResponse(task models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Done:        task.Done,
		Priority:    task.Priority,
		StartDate:   task.StartDate,
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		ProjectID:   task.ProjectID,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

// ListTasks returns the tasks of a project owned by the acting user.
// Tasks are only ever created under an owned project, so filtering by
// (project_id, user_id) is enough; querying someone else's project just
// yields an empty list.
func (h *Handler) ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
		return
	}

	var tasks []models.Task

	if err := h.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at DESC").Find(&tasks).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to list tasks")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, taskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateTask inserts a task under a project the acting user owns. The
// ownership check happens first; a project that does not exist and a
// project owned by someone else produce the same 404.
func (h *Handler) CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Título é obrigatório"})
		return
	}

	var project models.Project

	if err := h.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
		} else {
			h.logger.Error().Err(err).Msg("failed to fetch project")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		}
		return
	}

	task := models.Task{
		Title:     req.Title,
		ProjectID: project.ID,
		UserID:    userID,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
			return
		}
		task.StartDate = &startDate
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
			return
		}
		task.DueDate = &dueDate
	}

	if err := h.db.Create(&task).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create task")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	ctx.JSON(http.StatusCreated, taskResponse(task))
}

// UpdateTask applies a partial update to a task the acting user owns.
// At least one field must be supplied. The body is decoded field by
// field so an absent key and an explicit null are distinguishable: a
// null (or empty) date clears the column, a plain calendar date is
// anchored at noon UTC.
func (h *Handler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tarefa não encontrada"})
		return
	}

	var fields map[string]json.RawMessage

	if err := ctx.BindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	updates := make(map[string]interface{})

	if raw, ok := fields["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}
		updates["title"] = title
	}

	if raw, ok := fields["done"]; ok {
		var done bool
		if err := json.Unmarshal(raw, &done); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}
		updates["done"] = done
	}

	if raw, ok := fields["priority"]; ok {
		var priority int
		if err := json.Unmarshal(raw, &priority); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}
		if !models.ValidPriority(priority) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Prioridade inválida"})
			return
		}
		updates["priority"] = priority
	}

	for _, column := range []string{"start_date", "due_date", "completed_at"} {
		raw, ok := fields[column]
		if !ok {
			continue
		}

		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}

		// null and "" both clear the column.
		if value == nil || *value == "" {
			updates[column] = nil
			continue
		}

		parsed, err := utils.ParseDate(*value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
			return
		}
		updates[column] = parsed
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nada para atualizar"})
		return
	}

	result := h.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(updates)

	if result.Error != nil {
		h.logger.Error().Err(result.Error).Msg("failed to update task")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tarefa não encontrada"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Tarefa atualizada"})
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tarefa não encontrada"})
		return
	}

	result := h.db.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.Task{})

	if result.Error != nil {
		h.logger.Error().Err(result.Error).Msg("failed to delete task")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tarefa não encontrada"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Tarefa excluída"})
}
