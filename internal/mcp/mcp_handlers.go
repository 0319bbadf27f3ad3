package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/schoolscore/core"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/outwriter"
	"github.com/huangsam/schoolscore/internal/pending"
	"github.com/huangsam/schoolscore/internal/review"
	"github.com/huangsam/schoolscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

var errNoRemote = errors.New("remote store is not configured")

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	deps    Deps
}

// service builds a review service for the school named in the request.
func (h *toolHandler) service(request mcp.CallToolRequest) (*review.Service, error) {
	cfg := h.baseCfg.Clone()
	if id := request.GetString("school_id", ""); id != "" {
		cfg.SchoolID = id
	}
	if _, err := contract.SanitizeSchoolID(cfg.SchoolID); err != nil {
		return nil, err
	}
	if h.deps.Manager == nil || h.deps.Manager.GetRemoteStore() == nil {
		return nil, errNoRemote
	}
	return review.NewService(h.deps.Manager.GetRemoteStore(), h.pendingFor(cfg.SchoolID), cfg, h.deps.Catalog, h.deps.Graphs), nil
}

// pendingFor returns the pending store of schoolID. Other schools are read
// from the local cache on demand.
func (h *toolHandler) pendingFor(schoolID string) *pending.Store {
	if h.deps.Pending == nil || h.deps.Pending.SchoolID() == schoolID {
		return h.deps.Pending
	}
	var cache contract.LocalCache
	if h.deps.Manager != nil {
		cache = h.deps.Manager.GetLocalCache()
	}
	return pending.NewStore(cache, schoolID)
}

func jsonResult(data any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc, err := h.service(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}
	dimension := request.GetString("dimension", h.baseCfg.Dimension)
	report, err := svc.Report(ctx, dimension)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}
	return jsonResult(report), nil
}

func (h *toolHandler) handleGetCustomGraphs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc, err := h.service(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid graph parameters: %v", err)), nil
	}
	results, err := svc.CustomGraphs(ctx, request.GetString("dimension", h.baseCfg.Dimension))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("custom graphs failed: %v", err)), nil
	}
	return jsonResult(results), nil
}

func (h *toolHandler) handleCalculateOutcomeGrade(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codes, values, err := ParseAnswers(request.GetString("values", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}
	grade := core.CalculateOutcomeScore(codes, values, review.GradeThresholds(h.baseCfg))
	return jsonResult(outwriter.GradeView{Codes: codes, Grade: grade, Label: contract.GetPlainGrade(grade)}), nil
}

func (h *toolHandler) handleListPending(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.deps.Pending == nil {
		return mcp.NewToolResultError("local pending store is not configured"), nil
	}
	schoolID := request.GetString("school_id", h.baseCfg.SchoolID)
	if _, err := contract.SanitizeSchoolID(schoolID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid pending parameters: %v", err)), nil
	}
	store := h.pendingFor(schoolID)
	view := outwriter.PendingView{
		Status:   store.Status(),
		Comments: store.PendingComments(),
	}
	if source := request.GetString("source", ""); source != "" {
		view.Scores = store.GetPendingForSource(source)
	} else {
		view.Scores = store.Entries()
	}
	return jsonResult(view), nil
}

func (h *toolHandler) handleGetSurveyTally(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := review.ParseSurveyKind(request.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid survey parameters: %v", err)), nil
	}
	svc, err := h.service(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid survey parameters: %v", err)), nil
	}
	enabled, err := svc.SurveyEnabled(ctx, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("survey tally failed: %v", err)), nil
	}
	tallies, err := svc.SurveyTally(ctx, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("survey tally failed: %v", err)), nil
	}
	return jsonResult(outwriter.SurveyTallyView{Kind: kind, OnlineEnabled: enabled, Tallies: tallies}), nil
}

// ParseAnswers reads "code=answer" pairs separated by commas. Codes keep
// their input order; a repeated code keeps its last answer.
func ParseAnswers(raw string) ([]string, map[string]schema.IndicatorValue, error) {
	var codes []string
	values := make(map[string]schema.IndicatorValue)
	for pair := range strings.SplitSeq(raw, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		rawCode, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, nil, contract.NewValidationError("values", fmt.Sprintf("expected code=answer, got %q", strings.TrimSpace(pair)))
		}
		code, err := contract.SanitizeIndicatorCode(rawCode)
		if err != nil {
			return nil, nil, err
		}
		value, err := contract.ValidateScore(rawValue)
		if err != nil {
			return nil, nil, err
		}
		if _, seen := values[code]; !seen {
			codes = append(codes, code)
		}
		values[code] = value
	}
	if len(codes) == 0 {
		return nil, nil, contract.NewValidationError("values", "at least one code=answer pair is required")
	}
	return codes, values, nil
}
