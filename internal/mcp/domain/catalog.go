package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hollowedhq/seance/internal/ghost"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CatalogEntry is one ghost in the catalog resource payload.
type CatalogEntry struct {
	Name       string   `json:"name"`
	Evidence   []string `json:"evidence"`
	Guaranteed string   `json:"guaranteed,omitempty"`
	Fake       string   `json:"fake,omitempty"`
}

// CatalogPayload is the catalog resource payload.
type CatalogPayload struct {
	Ghosts []CatalogEntry `json:"ghosts"`
}

// CatalogResource defines the readable ghost catalog.
func CatalogResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "ghost_catalog",
		Title:       "Ghost Catalog",
		Description: "Readable listing of every ghost with its evidence set, guaranteed evidence and fake evidence",
		MIMEType:    "application/json",
		URI:         "ghosts://catalog",
	}
}

// CatalogResourceHandler serves the ghost catalog as JSON.
func CatalogResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CatalogResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		payload := CatalogPayload{}
		for _, g := range ghost.Catalog() {
			entry := CatalogEntry{Name: g.Name}
			for _, e := range g.Evidence {
				entry.Evidence = append(entry.Evidence, e.Key())
			}
			if g.Guaranteed != ghost.EvidenceUnspecified {
				entry.Guaranteed = g.Guaranteed.Key()
			}
			if g.Fake != ghost.EvidenceUnspecified {
				entry.Fake = g.Fake.Key()
			}
			payload.Ghosts = append(payload.Ghosts, entry)
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode catalog: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	}
}

// EvidenceEntry is one evidence kind in the evidence resource payload.
type EvidenceEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// EvidencePayload is the evidence resource payload.
type EvidencePayload struct {
	Evidence []EvidenceEntry `json:"evidence"`
}

// EvidenceResource defines the readable evidence listing.
func EvidenceResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "evidence_list",
		Title:       "Evidence Kinds",
		Description: "Readable listing of the evidence keys accepted by the deduction tool",
		MIMEType:    "application/json",
		URI:         "evidence://list",
	}
}

// EvidenceResourceHandler serves the evidence listing as JSON.
func EvidenceResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := EvidenceResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		payload := EvidencePayload{}
		for _, e := range ghost.AllEvidence() {
			payload.Evidence = append(payload.Evidence, EvidenceEntry{Key: e.Key(), Label: e.Label()})
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode evidence list: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	}
}
