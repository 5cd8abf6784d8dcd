package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/usecase"
)

type ProducerHandler struct {
	producerUsecase usecase.IProducerUsecase
}

func NewProducerHandler(producerUsecase usecase.IProducerUsecase) *ProducerHandler {
	return &ProducerHandler{
		producerUsecase: producerUsecase,
	}
}

// GetProducersHandler lists production companies, optionally filtered by
// lifecycle status.
func (h *ProducerHandler) GetProducersHandler(c *gin.Context) {
	producers, err := h.producerUsecase.GetProducers(c.Request.Context(), statusFilter(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, producers)
}

// GetProducerByIDHandler fetches a single production company.
func (h *ProducerHandler) GetProducerByIDHandler(c *gin.Context) {
	producer, err := h.producerUsecase.GetProducerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, producer)
}

// CreateProducerHandler creates a new production company.
func (h *ProducerHandler) CreateProducerHandler(c *gin.Context) {
	var req dto.CreateProducerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.CreateProducerInput{
		Name:        req.Name,
		Slogan:      req.Slogan,
		Description: req.Description,
	}
	if req.Status != "" {
		status := entity.Status(req.Status)
		input.Status = &status
	}

	producer, err := h.producerUsecase.CreateProducer(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, producer)
}

// UpdateProducerHandler applies a partial update to a production company.
func (h *ProducerHandler) UpdateProducerHandler(c *gin.Context) {
	var req dto.UpdateProducerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.UpdateProducerInput{
		Name:        req.Name,
		Slogan:      req.Slogan,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Status = &status
	}

	producer, err := h.producerUsecase.UpdateProducer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, producer)
}

// DeleteProducerHandler removes a production company.
func (h *ProducerHandler) DeleteProducerHandler(c *gin.Context) {
	if err := h.producerUsecase.DeleteProducer(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Producer deleted successfully")
}
