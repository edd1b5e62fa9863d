package handlers

import (
	"net/http"

	"github.com/demanda-dev/demanda/internal/models"
	"github.com/demanda-dev/demanda/internal/types"
	"github.com/demanda-dev/demanda/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Title         string `json:"title" binding:"required"`
	Service       string `json:"service" binding:"required"`
	Status        string `json:"status" binding:"required"`
	RequesterName string `json:"requester_name"`
}

type UpdateProjectRequest struct {
	Title         *string `json:"title"`
	Service       *string `json:"service"`
	Status        *string `json:"status"`
	RequesterName *string `json:"requester_name"`
}

func projectResponse(project models.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:            project.ID,
		Title:         project.Title,
		Service:       project.Service,
		Status:        project.Status,
		RequesterName: project.RequesterName,
		UserID:        project.UserID,
		CreatedAt:     project.CreatedAt,
	}
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	var projects []models.Project

	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to list projects")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Preencha tudo"})
		return
	}

	if !models.ValidService(req.Service) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Serviço inválido"})
		return
	}

	project := models.Project{
		Title:         req.Title,
		Service:       req.Service,
		Status:        req.Status,
		RequesterName: req.RequesterName,
		UserID:        userID,
	}

	if err := h.db.Create(&project).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(project))
}

// UpdateProject applies a partial update. The WHERE clause carries both
// the id and the owner, so "not found" and "not owned" are the same
// outcome and there is no check-then-mutate gap.
func (h *Handler) UpdateProject(ctx *gin.Context) {
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

	var req UpdateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Preencha tudo"})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Service != nil {
		if !models.ValidService(*req.Service) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Serviço inválido"})
			return
		}
		updates["service"] = *req.Service
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.RequesterName != nil {
		updates["requester_name"] = *req.RequesterName
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nada para atualizar"})
		return
	}

	result := h.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		Updates(updates)

	if result.Error != nil {
		h.logger.Error().Err(result.Error).Msg("failed to update project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Projeto atualizado"})
}

// DeleteProject removes the project and its tasks in one transaction.
func (h *Handler) DeleteProject(ctx *gin.Context) {
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

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", projectID, userID).Delete(&models.Project{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Projeto excluído"})
}
