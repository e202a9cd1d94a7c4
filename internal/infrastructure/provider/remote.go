package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"go.uber.org/zap"
)

// maxResponseSize is the maximum allowed response size from a remote oracle (1MB)
const maxResponseSize = 1 * 1024 * 1024

// RemoteProvider proxies every call to an external oracle service over
// HTTP. Connection failures and unexpected statuses are mapped onto the same
// domain error codes the built-in provider produces, so callers observe
// uniform failure semantics regardless of backend.
type RemoteProvider struct {
	oracle     *directory.Oracle
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// remoteParticipant is the wire representation of a party association
type remoteParticipant struct {
	FspID        string  `json:"fspId"`
	PartyType    string  `json:"partyType,omitempty"`
	PartyID      string  `json:"partyId,omitempty"`
	PartySubType *string `json:"partySubType,omitempty"`
	Currency     *string `json:"currency,omitempty"`
}

// NewRemoteProvider creates a provider delegating to the oracle's endpoint
func NewRemoteProvider(oracle *directory.Oracle, timeout time.Duration, logger *zap.Logger) (*RemoteProvider, error) {
	if oracle.Endpoint == nil || strings.TrimSpace(*oracle.Endpoint) == "" {
		return nil, directory.NewProviderInitError("remote oracle has no endpoint")
	}
	baseURL, err := url.Parse(strings.TrimRight(*oracle.Endpoint, "/"))
	if err != nil {
		return nil, directory.NewProviderInitError(fmt.Sprintf("invalid endpoint %q: %s", *oracle.Endpoint, err))
	}

	return &RemoteProvider{
		oracle:  oracle,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Init verifies the remote oracle is reachable
func (p *RemoteProvider) Init(ctx context.Context) error {
	status, _, err := p.do(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return directory.NewProviderInitError(err.Error())
	}
	if status != http.StatusOK {
		return directory.NewProviderInitError(fmt.Sprintf("oracle %s health endpoint returned status %d", p.oracle.Name, status))
	}
	return nil
}

// Destroy releases idle connections; repeated calls are safe
func (p *RemoteProvider) Destroy(ctx context.Context) error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// HealthCheck reports remote reachability; never returns an error
func (p *RemoteProvider) HealthCheck(ctx context.Context) bool {
	status, _, err := p.do(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		p.logger.Debug("remote oracle health check failed",
			zap.String("oracle", p.oracle.Name),
			zap.Error(err),
		)
		return false
	}
	return status == http.StatusOK
}

// GetParticipantFspID resolves the party against the remote oracle. A 404
// from the oracle means no association exists and reads as nil.
func (p *RemoteProvider) GetParticipantFspID(ctx context.Context, party directory.PartyLookup) (*string, error) {
	status, body, err := p.do(ctx, http.MethodGet, p.participantPath(party), p.partyQuery(party), nil)
	if err != nil {
		return nil, directory.NewBackendFailureError(err)
	}

	switch status {
	case http.StatusOK:
		var participant remoteParticipant
		if err := json.Unmarshal(body, &participant); err != nil {
			return nil, directory.NewBackendFailureError(fmt.Errorf("undecodable oracle response: %w", err))
		}
		if participant.FspID == "" {
			return nil, nil
		}
		return &participant.FspID, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, directory.NewBackendFailureError(fmt.Errorf("oracle %s returned status %d", p.oracle.Name, status))
	}
}

// AssociateParticipant registers the association on the remote oracle
func (p *RemoteProvider) AssociateParticipant(ctx context.Context, fspID string, party directory.PartyLookup) error {
	payload, err := json.Marshal(remoteParticipant{FspID: fspID})
	if err != nil {
		return directory.NewBackendFailureError(err)
	}

	status, _, err := p.do(ctx, http.MethodPost, p.participantPath(party), p.partyQuery(party), payload)
	if err != nil {
		return directory.NewBackendFailureError(err)
	}

	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusConflict:
		return directory.NewAssociationExistsError(fspID)
	default:
		return directory.NewBackendFailureError(fmt.Errorf("oracle %s returned status %d", p.oracle.Name, status))
	}
}

// DisassociateParticipant removes the association from the remote oracle
func (p *RemoteProvider) DisassociateParticipant(ctx context.Context, fspID string, party directory.PartyLookup) error {
	query := p.partyQuery(party)
	query.Set("fspId", fspID)

	status, _, err := p.do(ctx, http.MethodDelete, p.participantPath(party), query, nil)
	if err != nil {
		return directory.NewBackendFailureError(err)
	}

	switch status {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return directory.NewAssociationNotFoundError(fspID)
	default:
		return directory.NewBackendFailureError(fmt.Errorf("oracle %s returned status %d", p.oracle.Name, status))
	}
}

// GetAllAssociations retrieves the oracle's full association set
func (p *RemoteProvider) GetAllAssociations(ctx context.Context) ([]directory.Association, error) {
	query := url.Values{}
	query.Set("partyType", p.oracle.PartyType)

	status, body, err := p.do(ctx, http.MethodGet, "/participants", query, nil)
	if err != nil {
		return nil, directory.NewBackendFailureError(err)
	}
	if status != http.StatusOK {
		return nil, directory.NewBackendFailureError(fmt.Errorf("oracle %s returned status %d", p.oracle.Name, status))
	}

	var participants []remoteParticipant
	if err := json.Unmarshal(body, &participants); err != nil {
		return nil, directory.NewBackendFailureError(fmt.Errorf("undecodable oracle response: %w", err))
	}

	associations := make([]directory.Association, 0, len(participants))
	for _, participant := range participants {
		associations = append(associations, directory.Association{
			FspID:        participant.FspID,
			PartyType:    participant.PartyType,
			PartyID:      participant.PartyID,
			PartySubType: participant.PartySubType,
			Currency:     participant.Currency,
		})
	}
	return associations, nil
}

// participantPath builds the participant resource path for a party
func (p *RemoteProvider) participantPath(party directory.PartyLookup) string {
	return fmt.Sprintf("/participants/%s/%s", url.PathEscape(party.PartyType), url.PathEscape(party.PartyID))
}

// partyQuery builds the optional routing dimensions query for a party
func (p *RemoteProvider) partyQuery(party directory.PartyLookup) url.Values {
	query := url.Values{}
	if party.PartySubType != nil {
		query.Set("partySubType", *party.PartySubType)
	}
	if party.Currency != nil {
		query.Set("currency", *party.Currency)
	}
	return query
}

// do executes one HTTP round trip against the oracle and returns the status
// and a size-capped body
func (p *RemoteProvider) do(ctx context.Context, method, path string, query url.Values, payload []byte) (int, []byte, error) {
	target := *p.baseURL
	target.Path = target.Path + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// Ensure RemoteProvider implements directory.OracleProvider
var _ directory.OracleProvider = (*RemoteProvider)(nil)
