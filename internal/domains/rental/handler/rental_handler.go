package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/rental/model"
	"library-backend/internal/domains/rental/service"
	"library-backend/internal/shared/response"
)

type RentalHandler struct {
	rentalService service.ServiceInterface
}

func NewRentalHandler(rentalService service.ServiceInterface) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

// RegisterRoutes registers all rental routes. Rentals live under the user
// resource because a rental is always performed on behalf of a user.
func (h *RentalHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/user")
	{
		users.POST("/rent/:nation_id", h.RentBook) // POST /api/user/rent/:nation_id
	}
}

// RentBook rents a book to the user identified by nation_id.
func (h *RentalHandler) RentBook(c *gin.Context) {
	var req model.RentBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	record, err := h.rentalService.Rent(c.Request.Context(), c.Param("nation_id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.RentBookResponse{
		Message: "book rented successfully",
		Info:    record,
	})
}

func handleServiceError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
