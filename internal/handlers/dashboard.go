package handlers

import (
	"errors"
	"net/http"

	"github.com/demanda-dev/demanda/internal/models"
	"github.com/demanda-dev/demanda/internal/types"
	"github.com/demanda-dev/demanda/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboard returns a project together with its tasks and completion
// counts, the payload the dashboard view renders in one request.
func (h *Handler) GetDashboard(ctx *gin.Context) {
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

	var tasks []models.Task

	if err := h.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at DESC").Find(&tasks).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to list tasks")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	summary := types.TasksSummary{Total: int64(len(tasks))}
	taskResponses := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		if task.Done {
			summary.Done++
		}
		taskResponses = append(taskResponses, taskResponse(task))
	}

	summary.Pending = summary.Total - summary.Done

	ctx.JSON(http.StatusOK, types.DashboardResponse{
		Project: projectResponse(project),
		Summary: summary,
		Tasks:   taskResponses,
	})
}
