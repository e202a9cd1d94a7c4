package handler

import (
	lookupapp "github.com/finswitch/account-lookup/internal/application/lookup"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OracleHandler handles oracle administration API endpoints
type OracleHandler struct {
	BaseHandler
	lookupService *lookupapp.LookupService
}

// NewOracleHandler creates a new OracleHandler
func NewOracleHandler(lookupService *lookupapp.LookupService) *OracleHandler {
	return &OracleHandler{
		lookupService: lookupService,
	}
}

// Create godoc
// @ID           createOracle
// @Summary      Register an oracle routing rule
// @Description  Registers an oracle responsible for a party type, optionally scoped to a currency and sub-type
// @Tags         oracles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body lookupapp.CreateOracleRequest true "Oracle to register"
// @Success      201 {object} APIResponse[lookupapp.OracleResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /oracles [post]
func (h *OracleHandler) Create(c *gin.Context) {
	var req lookupapp.CreateOracleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	response, err := h.lookupService.RegisterOracle(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// List godoc
// @ID           listOracles
// @Summary      List registered oracles
// @Tags         oracles
// @Produce      json
// @Security     BearerAuth
// @Param        party_type query string false "Filter by party type"
// @Param        type query string false "Filter by oracle type" Enums(builtin, remote-http)
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]lookupapp.OracleResponse]
// @Router       /oracles [get]
func (h *OracleHandler) List(c *gin.Context) {
	var filter lookupapp.OracleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	oracles, total, err := h.lookupService.ListOracles(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, oracles, total, page, pageSize)
}

// Get godoc
// @ID           getOracle
// @Summary      Get an oracle by id
// @Tags         oracles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Oracle ID"
// @Success      200 {object} APIResponse[lookupapp.OracleResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /oracles/{id} [get]
func (h *OracleHandler) Get(c *gin.Context) {
	oracleID, ok := h.oracleIDFromPath(c)
	if !ok {
		return
	}

	response, err := h.lookupService.GetOracleByID(c.Request.Context(), oracleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
// @ID           deleteOracle
// @Summary      Remove an oracle routing rule
// @Description  Removes the oracle and tears down its provider. Parties routed by it become unresolvable until another oracle covers them.
// @Tags         oracles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Oracle ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse
// @Router       /oracles/{id} [delete]
func (h *OracleHandler) Delete(c *gin.Context) {
	oracleID, ok := h.oracleIDFromPath(c)
	if !ok {
		return
	}

	if err := h.lookupService.RemoveOracle(c.Request.Context(), oracleID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Health godoc
// @ID           checkOracleHealth
// @Summary      Check an oracle's backend reachability
// @Description  Probes the oracle's backend. An unreachable backend reads as unhealthy, not as an error.
// @Tags         oracles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Oracle ID"
// @Success      200 {object} APIResponse[lookupapp.OracleHealthResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /oracles/{id}/health [get]
func (h *OracleHandler) Health(c *gin.Context) {
	oracleID, ok := h.oracleIDFromPath(c)
	if !ok {
		return
	}

	response, err := h.lookupService.HealthCheckOracle(c.Request.Context(), oracleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Associations godoc
// @ID           listOracleAssociations
// @Summary      List the associations an oracle owns
// @Tags         oracles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Oracle ID"
// @Success      200 {object} APIResponse[[]lookupapp.AssociationResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /oracles/{id}/associations [get]
func (h *OracleHandler) Associations(c *gin.Context) {
	oracleID, ok := h.oracleIDFromPath(c)
	if !ok {
		return
	}

	associations, err := h.lookupService.GetOracleAssociations(c.Request.Context(), oracleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, associations)
}

// oracleIDFromPath parses the oracle id path parameter
func (h *OracleHandler) oracleIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	oracleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid oracle ID")
		return uuid.Nil, false
	}
	return oracleID, true
}
