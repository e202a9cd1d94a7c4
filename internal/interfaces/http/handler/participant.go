package handler

import (
	lookupapp "github.com/finswitch/account-lookup/internal/application/lookup"
	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles participant association API endpoints
type ParticipantHandler struct {
	BaseHandler
	lookupService *lookupapp.LookupService
}

// NewParticipantHandler creates a new ParticipantHandler
func NewParticipantHandler(lookupService *lookupapp.LookupService) *ParticipantHandler {
	return &ParticipantHandler{
		lookupService: lookupService,
	}
}

// Associate godoc
// @ID           associateParticipant
// @Summary      Register a party as owned by an FSP
// @Description  Routes the party to its oracle and records the ownership claim there. Duplicate claims surface as UNABLE_TO_ASSOCIATE.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body lookupapp.AssociateParticipantRequest true "Association to create"
// @Success      201 {object} APIResponse[lookupapp.AssociateParticipantRequest]
// @Failure      422 {object} ErrorResponse
// @Router       /participants [post]
func (h *ParticipantHandler) Associate(c *gin.Context) {
	var req lookupapp.AssociateParticipantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.lookupService.AssociateParticipant(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, req)
}

// Disassociate godoc
// @ID           disassociateParticipant
// @Summary      Remove a party ownership claim
// @Description  Routes the party to its oracle and removes the ownership claim there. A missing claim surfaces as UNABLE_TO_DISASSOCIATE.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body lookupapp.DisassociateParticipantRequest true "Association to remove"
// @Success      204 "No Content"
// @Failure      422 {object} ErrorResponse
// @Router       /participants [delete]
func (h *ParticipantHandler) Disassociate(c *gin.Context) {
	var req lookupapp.DisassociateParticipantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.lookupService.DisassociateParticipant(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
