package utils

import (
	"fmt"
	"strconv"

	"github.com/demanda-dev/demanda/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return 0, fmt.Errorf("user not authenticated")
	}

	userID, ok := value.(uint)

	if !ok {
		return 0, fmt.Errorf("invalid user id type in context")
	}

	return userID, nil
}

func GetProjectID(ctx *gin.Context) (uint64, error) {
	return parseIDParam(ctx, "project_id")
}

func GetTaskID(ctx *gin.Context) (uint64, error) {
	return parseIDParam(ctx, "task_id")
}

func parseIDParam(ctx *gin.Context, name string) (uint64, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, fmt.Errorf("%s not found", name)
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}
