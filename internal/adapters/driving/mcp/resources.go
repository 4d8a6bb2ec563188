package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/formatter"
)

const (
	// uriScheme is the custom URI scheme for discreta resources.
	uriScheme = "discreta://"

	// historyResourceLimit bounds the history resource.
	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "operations",
		Name:        "operations",
		Description: "Catalogue of supported operations",
		MIMEType:    "application/json",
	}, s.handleOperationsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent calculations",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "operations/{name}",
		Name:        "operation-card",
		Description: "Formula, description and input format of one operation",
		MIMEType:    "text/plain",
	}, s.handleOperationResource)
}

// handleOperationsResource returns the operation catalogue.
func (s *Server) handleOperationsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Calculator.Operations(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling operations: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleHistoryResource returns recent calculations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []byte("[]")), nil
	}

	entries, err := s.ports.History.Recent(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleOperationResource returns the catalogue card of one operation.
func (s *Server) handleOperationResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractOperationName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	op, err := domain.ParseOperation(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	lines := formatter.Operation(op.Info(), s.notation())
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     strings.Join(lines, "\n"),
		}},
	}, nil
}

// notation returns the configured notation, or plain without settings.
func (s *Server) notation() domain.Notation {
	if s.ports.Settings == nil {
		return domain.NotationPlain
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.NotationPlain
	}
	return settings.Output.Notation
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractOperationName extracts the name from a URI like discreta://operations/{name}.
func extractOperationName(uri string) string {
	const prefix = uriScheme + "operations/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
