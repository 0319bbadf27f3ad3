// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/pending"
	"github.com/huangsam/schoolscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Deps are the stores and catalog data shared by every tool call.
type Deps struct {
	Manager contract.StoreManager
	Pending *pending.Store
	Catalog []schema.CatalogRow
	Graphs  []schema.CustomGraph
}

var dimensionIDs = []string{"D1", "D2", "D3", "D4", "D5"}

// NewMCPServer initializes and configures the schoolscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"School Score Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		deps:    deps,
	}

	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Score a school's review data into strand, substrand and outcome results."),
		mcp.WithString("school_id", mcp.Description("School to report on (defaults to the configured school).")),
		mcp.WithString("dimension", mcp.Description("Limit the report to one dimension."), mcp.Enum(dimensionIDs...)),
	), h.handleGetReport)

	s.AddTool(mcp.NewTool("get_custom_graphs",
		mcp.WithDescription("Score the named custom outcome graphs of a dimension."),
		mcp.WithString("school_id", mcp.Description("School to score (defaults to the configured school).")),
		mcp.WithString("dimension", mcp.Description("Dimension whose graphs to score. All graphs when empty."), mcp.Enum(dimensionIDs...)),
	), h.handleGetCustomGraphs)

	s.AddTool(mcp.NewTool("calculate_outcome_grade",
		mcp.WithDescription("Grade a set of checklist answers as Fully Achieved, Mostly Achieved, Achieved, Not Sufficient or Not Reviewed."),
		mcp.WithString("values", mcp.Description("Comma separated code=answer pairs, e.g. '82=yes,83=no,84=nr'."), mcp.Required()),
	), h.handleCalculateOutcomeGrade)

	s.AddTool(mcp.NewTool("list_pending",
		mcp.WithDescription("List local score and comment edits that have not been synced yet."),
		mcp.WithString("school_id", mcp.Description("School whose edits to list (defaults to the configured school).")),
		mcp.WithString("source", mcp.Description("Only list scores recorded for this source.")),
	), h.handleListPending)

	s.AddTool(mcp.NewTool("get_survey_tally",
		mcp.WithDescription("Count stakeholder survey ratings per indicator."),
		mcp.WithString("kind", mcp.Description("Survey kind."), mcp.Required(), mcp.Enum("parent", "student", "teacher")),
		mcp.WithString("school_id", mcp.Description("School to tally (defaults to the configured school).")),
	), h.handleGetSurveyTally)

	return s
}

// StartMCPServer starts the schoolscore MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, deps Deps) error {
	s := NewMCPServer(baseCfg, deps)
	return server.ServeStdio(s)
}
