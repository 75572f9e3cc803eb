package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/service"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService service.ServiceInterface
}

func NewAuthorHandler(authorService service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// RegisterRoutes registers all author routes.
func (h *AuthorHandler) RegisterRoutes(router *gin.RouterGroup) {
	authors := router.Group("/author")
	{
		authors.GET("", h.ListAuthors)              // GET /api/author?name&country&birth_date
		authors.POST("/create", h.CreateAuthor)     // POST /api/author/create
		authors.GET("/:author_id", h.GetAuthorByID) // GET /api/author/:author_id
	}
}

// ListAuthors returns every author matching the provided query filters.
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var f model.Filter
	if v, ok := c.GetQuery("name"); ok {
		f.Name = &v
	}
	if v, ok := c.GetQuery("country"); ok {
		f.Country = &v
	}
	if v, ok := c.GetQuery("birth_date"); ok {
		f.BirthDate = &v
	}

	authors, err := h.authorService.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"authors": authors})
}

// CreateAuthor creates an author.
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	created, err := h.authorService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateAuthorResponse{
		ID:   created.ID,
		Info: created,
	})
}

// GetAuthorByID fetches one author with the names of their books.
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("author_id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", "author_id must be a valid UUID")
		return
	}

	detail, err := h.authorService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func handleServiceError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
