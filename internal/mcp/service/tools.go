package service

import (
	"github.com/hollowedhq/seance/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerDeductionTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, domain.DeduceTool(), domain.DeduceHandler())
}

// registerCatalogResources registers the readable catalog listings.
func registerCatalogResources(mcpServer *mcp.Server) {
	mcpServer.AddResource(domain.CatalogResource(), domain.CatalogResourceHandler())
	mcpServer.AddResource(domain.EvidenceResource(), domain.EvidenceResourceHandler())
}
