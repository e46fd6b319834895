package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// UserController handles account listing endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers lists accounts
// @Summary List accounts
// @Description Returns accounts filtered by role and free-text search. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, email and phone"
// @Param role query string false "Role filter, or all"
// @Success 200 {object} dto.APIResponse "Accounts retrieved"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	search := ctx.Query("search")
	role := ctx.DefaultQuery("role", services.FilterAll)

	users, err := c.userService.List(ctx, search, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}
