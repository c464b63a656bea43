package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/response"
	"classdesk/internal/service"
)

// InstructionHandler handles instruction endpoints.
type InstructionHandler struct {
	instructionService service.InstructionService
}

// NewInstructionHandler creates a new instruction handler.
func NewInstructionHandler(instructionService service.InstructionService) *InstructionHandler {
	return &InstructionHandler{instructionService: instructionService}
}

// InstructionRequest represents an instruction create or update body.
type InstructionRequest struct {
	Instruction string `json:"instruction"`
	Status      string `json:"status"`
}

// InstructionResponse is the payload for an instruction read.
type InstructionResponse struct {
	Instruction string `json:"instruction"`
	Status      string `json:"status"`
	Done        int    `json:"done"`
}

// CreateResponse carries the short code allocated for a new instruction.
type CreateResponse struct {
	ID string `json:"id"`
}

// Get godoc
// @Summary Read an instruction by short code
// @Tags instruction
// @Produce json
// @Param id query string true "6-character short code"
// @Success 200 {object} response.Envelope{data=InstructionResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /instruction [get]
func (h *InstructionHandler) Get(c echo.Context) error {
	id := strings.ToLower(c.QueryParam("id"))

	instruction, err := h.instructionService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return response.OK(c, InstructionResponse{
		Instruction: instruction.Instruction,
		Status:      string(instruction.Status),
		Done:        instruction.Done(),
	})
}

// Post godoc
// @Summary Create an instruction (empty id) or update one (id set)
// @Tags instruction
// @Accept json
// @Produce json
// @Param id query string false "6-character short code; empty to create"
// @Param request body InstructionRequest true "Instruction data"
// @Success 200 {object} response.Envelope{data=CreateResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /instruction [post]
func (h *InstructionHandler) Post(c echo.Context) error {
	id := strings.ToLower(c.QueryParam("id"))

	var req InstructionRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	if id == "" {
		code, err := h.instructionService.Create(c.Request().Context(), req.Instruction)
		if err != nil {
			return fail(c, err)
		}
		return response.OK(c, CreateResponse{ID: code})
	}

	err := h.instructionService.Update(c.Request().Context(), id, service.UpdateInput{
		Instruction: req.Instruction,
		Status:      req.Status,
	})
	if err != nil {
		return fail(c, err)
	}
	return response.OK(c, nil)
}
