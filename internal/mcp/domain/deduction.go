// Package domain defines the MCP tools and resources for ghost
// deduction.
package domain

import (
	"context"
	"fmt"

	"github.com/hollowedhq/seance/internal/deduce"
	"github.com/hollowedhq/seance/internal/ghost"
	"github.com/hollowedhq/seance/internal/journal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DeduceInput represents the MCP tool input for a deduction query.
type DeduceInput struct {
	Found    []string `json:"found,omitempty" jsonschema:"evidence keys confirmed found (emf, dots, ultraviolet, orb, writing, spiritbox, freezing)"`
	RuledOut []string `json:"ruled_out,omitempty" jsonschema:"evidence keys confirmed ruled out"`
	Limit    int      `json:"limit,omitempty" jsonschema:"contract evidence limit (1-3, defaults to 3)"`
}

// DeduceResult represents the MCP tool output for a deduction query.
type DeduceResult struct {
	Candidates    []string `json:"candidates" jsonschema:"ghosts still consistent with the journal, in catalog order"`
	NoneRemaining bool     `json:"none_remaining" jsonschema:"true when no catalog ghost matches the journal"`
	Limit         int      `json:"limit" jsonschema:"evidence limit applied to the deduction"`
}

// DeduceTool defines the MCP tool schema for a deduction query.
func DeduceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "ghost_deduce",
		Description: "Lists the ghosts still consistent with a set of found and ruled-out evidence under the contract's evidence limit.",
	}
}

// DeduceHandler executes a deduction query against the catalog.
func DeduceHandler() mcp.ToolHandlerFor[DeduceInput, DeduceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeduceInput) (*mcp.CallToolResult, DeduceResult, error) {
		j, err := journalFromInput(input)
		if err != nil {
			return nil, DeduceResult{}, err
		}

		candidates := deduce.PossibleGhosts(j, ghost.Catalog())
		result := DeduceResult{
			Candidates:    candidates,
			NoneRemaining: len(candidates) == 0,
			Limit:         j.Limit(),
		}
		return nil, result, nil
	}
}

// journalFromInput builds a journal from tool input, rejecting unknown
// evidence keys and contradictory marks before any deduction runs.
func journalFromInput(input DeduceInput) (*journal.Journal, error) {
	j := journal.New()
	if input.Limit != 0 {
		if err := j.SetLimit(input.Limit); err != nil {
			return nil, fmt.Errorf("evidence limit %d is out of range (1-3)", input.Limit)
		}
	}
	for _, key := range input.Found {
		evidence := ghost.EvidenceFromKey(key)
		if evidence == ghost.EvidenceUnspecified {
			return nil, fmt.Errorf("unknown evidence key %q", key)
		}
		if err := j.Set(evidence, journal.MarkPresent); err != nil {
			return nil, err
		}
	}
	for _, key := range input.RuledOut {
		evidence := ghost.EvidenceFromKey(key)
		if evidence == ghost.EvidenceUnspecified {
			return nil, fmt.Errorf("unknown evidence key %q", key)
		}
		if j.Mark(evidence) == journal.MarkPresent {
			return nil, fmt.Errorf("evidence %q is both found and ruled out", key)
		}
		if err := j.Set(evidence, journal.MarkAbsent); err != nil {
			return nil, err
		}
	}
	return j, nil
}
