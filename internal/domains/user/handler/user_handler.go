package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/service"
	"library-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes. The rent route lives in the
// rental handler, registered on the same group by the router.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/user")
	{
		users.GET("", h.ListUsers)                 // GET /api/user?user_name&book_name
		users.POST("/create", h.CreateUser)        // POST /api/user/create
		users.GET("/:nation_id", h.GetUserHistory) // GET /api/user/:nation_id
	}
}

// ListUsers returns users resolved through rental history, filtered by
// the provided query parameters.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var f model.Filter
	if v, ok := c.GetQuery("user_name"); ok {
		f.UserName = &v
	}
	if v, ok := c.GetQuery("book_name"); ok {
		f.BookName = &v
	}

	users, err := h.userService.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// CreateUser creates a user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	created, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateUserResponse{
		ID:   created.ID,
		Info: created,
	})
}

// GetUserHistory returns the rental history of one user.
func (h *UserHandler) GetUserHistory(c *gin.Context) {
	history, err := h.userService.History(c.Request.Context(), c.Param("nation_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": history})
}

func handleServiceError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
