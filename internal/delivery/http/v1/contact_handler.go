package v1

import (
	"errors"
	"io"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/send", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and relay it by email to the site owner.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	// JSON or form depending on Content-Type; an empty body is an empty submission
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.Error(appErr)
			return
		}
		// Every transport failure collapses to the same generic message
		c.Error(apperror.New(http.StatusInternalServerError, domain.MsgSendFailed, err))
		return
	}

	response.Success(c, http.StatusOK, domain.MsgSendSucceeded, nil)
}
