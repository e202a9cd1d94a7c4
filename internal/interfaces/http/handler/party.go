package handler

import (
	"net/http"
	"strings"

	lookupapp "github.com/finswitch/account-lookup/internal/application/lookup"
	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/interfaces/http/dto"
	"github.com/finswitch/account-lookup/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// FspiopSourceHeader identifies the FSP that issued the request
const FspiopSourceHeader = "FSPIOP-Source"

// PartyHandler handles party resolution API endpoints
type PartyHandler struct {
	BaseHandler
	lookupService *lookupapp.LookupService
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(lookupService *lookupapp.LookupService) *PartyHandler {
	return &PartyHandler{
		lookupService: lookupService,
	}
}

// partyLookupQuery carries the optional query parameters of a single lookup
type partyLookupQuery struct {
	Currency string `form:"currency" binding:"omitempty,currency_code"`
}

// GetPartyByTypeAndID godoc
// @ID           getPartyByTypeAndID
// @Summary      Resolve the FSP owning a party
// @Description  Routes the party to its oracle and returns the owning FSP. A party no participant owns resolves to a null fspId, not an error.
// @Tags         parties
// @Produce      json
// @Param        partyType path string true "Party identifier type" example(MSISDN)
// @Param        partyId path string true "Party identifier" example(27713803912)
// @Param        currency query string false "ISO 4217 currency code" example(ZAR)
// @Param        FSPIOP-Source header string false "Requesting FSP identifier"
// @Success      200 {object} APIResponse[lookupapp.PartyLookupResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /parties/{partyType}/{partyId} [get]
func (h *PartyHandler) GetPartyByTypeAndID(c *gin.Context) {
	req, ok := h.partyFromPath(c)
	if !ok {
		return
	}

	var query partyLookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if query.Currency != "" {
		req.Currency = &query.Currency
	}
	req.RequesterFspID = c.GetHeader(FspiopSourceHeader)

	response, err := h.lookupService.LookupParticipant(c.Request.Context(), req)
	if err != nil {
		// A party nobody owns is a successful lookup with an empty result
		if directory.HasErrorCode(err, directory.ErrCodeParticipantNotFound) {
			h.Success(c, nil)
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// BulkLookup godoc
// @ID           bulkLookupParties
// @Summary      Resolve a batch of parties
// @Description  Resolves every submitted party concurrently. Entries that cannot be resolved, for any reason, carry a null fspId; the batch itself always succeeds.
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        FSPIOP-Source header string false "Requesting FSP identifier"
// @Param        request body map[string]lookupapp.PartyLookupRequest true "Parties keyed by caller-chosen request id"
// @Success      200 {object} APIResponse[lookupapp.BulkLookupResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /parties/lookup [post]
func (h *PartyHandler) BulkLookup(c *gin.Context) {
	var req lookupapp.BulkLookupRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.RequesterFspID = c.GetHeader(FspiopSourceHeader)

	response, err := h.lookupService.LookupParticipants(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// partyFromPath extracts and validates the party identification path
// parameters. A malformed path segment is a routing miss, so it reads as 404
// rather than a validation failure.
func (h *PartyHandler) partyFromPath(c *gin.Context) (lookupapp.PartyLookupRequest, bool) {
	partyType := strings.TrimSpace(c.Param("partyType"))
	partyID := strings.TrimSpace(c.Param("partyId"))

	if !validPathSegment(partyType, 32) || !validPathSegment(partyID, 128) {
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Unknown party resource")
		return lookupapp.PartyLookupRequest{}, false
	}

	req := lookupapp.PartyLookupRequest{
		PartyType: partyType,
		PartyID:   partyID,
	}

	if sub := strings.TrimSpace(c.Param("partySubType")); sub != "" {
		if !validPathSegment(sub, 32) {
			h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Unknown party resource")
			return lookupapp.PartyLookupRequest{}, false
		}
		req.PartySubType = &sub
	}
	return req, true
}

// validPathSegment checks a path parameter for emptiness, length, and
// embedded whitespace
func validPathSegment(value string, maxLen int) bool {
	if value == "" || len(value) > maxLen {
		return false
	}
	return !strings.ContainsAny(value, " \t\r\n")
}
