package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// RegisterRoutes registers all book routes.
func (h *BookHandler) RegisterRoutes(router *gin.RouterGroup) {
	books := router.Group("/book")
	{
		books.GET("", h.ListBooks)            // GET /api/book?name&year&category&status&author
		books.POST("/create", h.CreateBook)   // POST /api/book/create
		books.GET("/:book_id", h.GetBookByID) // GET /api/book/:book_id
	}
}

// ListBooks returns every book matching the provided query filters.
func (h *BookHandler) ListBooks(c *gin.Context) {
	f, err := parseBookFilter(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	books, err := h.bookService.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"books": books})
}

// CreateBook creates a book referencing an existing author by name.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	created, err := h.bookService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateBookResponse{
		ID:   created.ID,
		Info: created,
	})
}

// GetBookByID fetches one book by its surrogate id.
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", "book_id must be a valid UUID")
		return
	}

	b, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// parseBookFilter reads the optional query parameters. Malformed values
// (non-integer year, unknown status) are rejected before any query runs.
func parseBookFilter(c *gin.Context) (model.Filter, error) {
	var f model.Filter

	if v, ok := c.GetQuery("name"); ok {
		f.Name = &v
	}
	if v, ok := c.GetQuery("category"); ok {
		f.Category = &v
	}
	if v, ok := c.GetQuery("author"); ok {
		f.Author = &v
	}
	if v, ok := c.GetQuery("year"); ok {
		year, err := strconv.Atoi(v)
		if err != nil {
			return model.Filter{}, model.ErrInvalidYear
		}
		f.Year = &year
	}
	if v, ok := c.GetQuery("status"); ok {
		status, err := model.ParseStatus(v)
		if err != nil {
			return model.Filter{}, err
		}
		f.Status = &status
	}

	return f, nil
}

func handleServiceError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
