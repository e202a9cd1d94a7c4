package handler

import (
	eventapp "github.com/finswitch/account-lookup/internal/application/event"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OutboxHandler handles outbox administration API endpoints
type OutboxHandler struct {
	BaseHandler
	outboxService *eventapp.OutboxService
}

// NewOutboxHandler creates a new OutboxHandler
func NewOutboxHandler(outboxService *eventapp.OutboxService) *OutboxHandler {
	return &OutboxHandler{
		outboxService: outboxService,
	}
}

// Stats godoc
// @ID           getOutboxStats
// @Summary      Get outbox delivery statistics
// @Description  Returns event counts per outbox status
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[eventapp.OutboxStatsDTO]
// @Failure      500 {object} ErrorResponse
// @Router       /system/outbox/stats [get]
func (h *OutboxHandler) Stats(c *gin.Context) {
	stats, err := h.outboxService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListDead godoc
// @ID           listDeadOutboxEntries
// @Summary      List dead letter outbox entries
// @Description  Returns events that exhausted their delivery retries
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]eventapp.OutboxEntryDTO]
// @Router       /system/outbox/dead [get]
func (h *OutboxHandler) ListDead(c *gin.Context) {
	var filter eventapp.OutboxFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.outboxService.GetDeadLetterEntries(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Entries, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @ID           getOutboxEntry
// @Summary      Get an outbox entry by id
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Outbox entry ID"
// @Success      200 {object} APIResponse[eventapp.OutboxEntryDTO]
// @Failure      404 {object} ErrorResponse
// @Router       /system/outbox/{id} [get]
func (h *OutboxHandler) Get(c *gin.Context) {
	entryID, ok := h.entryIDFromPath(c)
	if !ok {
		return
	}

	entry, err := h.outboxService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// Retry godoc
// @ID           retryOutboxEntry
// @Summary      Retry a dead letter entry
// @Description  Resets a dead entry to pending so the outbox processor picks it up again
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Outbox entry ID"
// @Success      200 {object} APIResponse[eventapp.OutboxEntryDTO]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /system/outbox/{id}/retry [post]
func (h *OutboxHandler) Retry(c *gin.Context) {
	entryID, ok := h.entryIDFromPath(c)
	if !ok {
		return
	}

	entry, err := h.outboxService.RetryDeadEntry(c.Request.Context(), entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// RetryAllResponse reports how many dead entries were reset
// @name HandlerRetryAllResponse
type RetryAllResponse struct {
	RetriedCount int64 `json:"retried_count" example:"3"`
}

// RetryAll godoc
// @ID           retryAllOutboxEntries
// @Summary      Retry all dead letter entries
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[RetryAllResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /system/outbox/retry-all [post]
func (h *OutboxHandler) RetryAll(c *gin.Context) {
	count, err := h.outboxService.RetryAllDeadEntries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RetryAllResponse{RetriedCount: count})
}

// entryIDFromPath parses the outbox entry id path parameter
func (h *OutboxHandler) entryIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid outbox entry ID")
		return uuid.Nil, false
	}
	return entryID, true
}
