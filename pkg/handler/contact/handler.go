package contact

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/response"
	contact_service "github.com/officinaverde/blog-api/pkg/service/contact"
)

// Handler bundles the contact page HTTP handlers.
type Handler struct {
	svc contact_service.Service
}

// NewHandler is the constructor for Handler.
func NewHandler(svc contact_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Submit receives a public contact form submission.
func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	result, err := h.svc.Submit(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "message received")
}

// List pages through stored messages for the admin dashboard.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}
