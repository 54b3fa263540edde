// Package mcp hosts the glaze engine as an MCP tool server. It is thin glue:
// it validates nothing itself, delegates every call to internal/glaze, and
// serializes the engine's structures through the SDK.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"glazier/internal/glaze"
	"glazier/internal/logging"
)

// defaultEnhancePercentage is assumed when enhancing a prompt, where the
// caller supplies no colorant amount.
const defaultEnhancePercentage = 10.0

// Server wraps the MCP SDK server with the glaze analysis tools.
type Server struct {
	MCPServer *sdkmcp.Server
}

// NewServer creates an MCP server exposing the five glaze tools.
func NewServer() *Server {
	s := &Server{}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "glazier", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_glaze_formulation",
		Description: "Analyze a pottery glaze formulation and extract bounded visual parameters, descriptive qualities, and a sensory intention for image generation.",
	}, s.handleAnalyze)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "enhance_image_prompt_from_glaze",
		Description: "Append a bracketed glaze-aesthetic clause to a base image prompt. The base prompt is preserved verbatim.",
	}, s.handleEnhancePrompt)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_available_colorants",
		Description: "List all supported metal-oxide colorants with their visual characteristics and atmosphere responses.",
	}, s.handleListColorants)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_available_fluxes",
		Description: "List all supported flux systems with their surface, melt, and flow characteristics.",
	}, s.handleListFluxes)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_glaze_formulations",
		Description: "Compare two glaze formulations: per-parameter signed deltas with qualitative verdicts (similar / moderately different / strongly different).",
	}, s.handleCompare)
}

// --- Tool input/output types ---

type formulationInput struct {
	Colorant           string  `json:"colorant" jsonschema:"metal oxide colorant (iron, cobalt, copper, chrome, manganese, vanadium)"`
	ColorantPercentage float64 `json:"colorant_percentage" jsonschema:"percentage of colorant in the formulation (typically 0.5-15)"`
	FluxType           string  `json:"flux_type" jsonschema:"primary flux system (boron, alkaline, alkaline_earth, lead)"`
	Atmosphere         string  `json:"atmosphere" jsonschema:"kiln atmosphere (oxidation, reduction, neutral)"`
	Cone               int     `json:"cone" jsonschema:"firing cone; low-fire 0x cones as negatives (06 = -6), range -6 to 14"`
	Runs               bool    `json:"runs,omitempty" jsonschema:"whether the glaze is formulated to run and pool"`
}

func (in formulationInput) toFormulation() glaze.Formulation {
	return glaze.Formulation{
		Colorant:   glaze.Colorant(in.Colorant),
		Percentage: in.ColorantPercentage,
		Flux:       glaze.Flux(in.FluxType),
		Atmosphere: glaze.Atmosphere(in.Atmosphere),
		Cone:       in.Cone,
		Runs:       in.Runs,
	}
}

type analyzeOutput struct {
	GlazeName            string                     `json:"glaze_name"`
	VisualParameters     glaze.VisualParameters     `json:"visual_parameters"`
	DescriptiveQualities glaze.DescriptiveQualities `json:"descriptive_qualities"`
	SensoryIntention     string                     `json:"sensory_intention"`
}

func toAnalyzeOutput(a *glaze.Analysis) analyzeOutput {
	return analyzeOutput{
		GlazeName:            a.GlazeName,
		VisualParameters:     a.Parameters,
		DescriptiveQualities: a.Qualities,
		SensoryIntention:     a.SensoryIntention,
	}
}

type enhancePromptInput struct {
	BasePrompt string `json:"base_prompt" jsonschema:"original image generation prompt to enhance"`
	Colorant   string `json:"colorant" jsonschema:"metal oxide colorant (iron, cobalt, copper, chrome, manganese, vanadium)"`
	FluxType   string `json:"flux_type" jsonschema:"primary flux system (boron, alkaline, alkaline_earth, lead)"`
	Atmosphere string `json:"atmosphere" jsonschema:"kiln atmosphere (oxidation, reduction, neutral)"`
	Cone       int    `json:"cone" jsonschema:"firing cone; low-fire 0x cones as negatives (06 = -6)"`
}

type enhancePromptOutput struct {
	OriginalPrompt  string        `json:"original_prompt"`
	EnhancementText string        `json:"enhancement_text"`
	EnhancedPrompt  string        `json:"enhanced_prompt"`
	GlazeAnalysis   analyzeOutput `json:"glaze_analysis"`
}

type listColorantsOutput struct {
	Colorants []glaze.ColorantProfile `json:"colorants"`
}

type listFluxesOutput struct {
	Fluxes []glaze.FluxProfile `json:"fluxes"`
}

type compareInput struct {
	GlazeA formulationInput `json:"glaze_a" jsonschema:"first glaze formulation"`
	GlazeB formulationInput `json:"glaze_b" jsonschema:"second glaze formulation"`
}

type compareOutput struct {
	GlazeA analyzeOutput          `json:"glaze_a"`
	GlazeB analyzeOutput          `json:"glaze_b"`
	Deltas []glaze.ParameterDelta `json:"deltas"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyze(ctx context.Context, _ *sdkmcp.CallToolRequest, input formulationInput) (*sdkmcp.CallToolResult, analyzeOutput, error) {
	logger := logging.New("glaze-tools")
	requestID := uuid.NewString()

	analysis, err := glaze.Analyze(input.toFormulation())
	if err != nil {
		logger.Warn("analyze rejected", "request_id", requestID, "error", err)
		return nil, analyzeOutput{}, fmt.Errorf("analyze_glaze_formulation: %w", err)
	}

	logger.Info("formulation analyzed",
		"request_id", requestID,
		"glaze", analysis.GlazeName,
		"colorant", input.Colorant,
		"flux", input.FluxType,
		"cone", input.Cone)
	return nil, toAnalyzeOutput(analysis), nil
}

func (s *Server) handleEnhancePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input enhancePromptInput) (*sdkmcp.CallToolResult, enhancePromptOutput, error) {
	logger := logging.New("glaze-tools")
	requestID := uuid.NewString()

	enh, err := glaze.EnhancePrompt(input.BasePrompt, glaze.Formulation{
		Colorant:   glaze.Colorant(input.Colorant),
		Percentage: defaultEnhancePercentage,
		Flux:       glaze.Flux(input.FluxType),
		Atmosphere: glaze.Atmosphere(input.Atmosphere),
		Cone:       input.Cone,
	})
	if err != nil {
		logger.Warn("enhance rejected", "request_id", requestID, "error", err)
		return nil, enhancePromptOutput{}, fmt.Errorf("enhance_image_prompt_from_glaze: %w", err)
	}

	logger.Info("prompt enhanced",
		"request_id", requestID,
		"glaze", enh.Analysis.GlazeName,
		"base_len", len(input.BasePrompt))
	return nil, enhancePromptOutput{
		OriginalPrompt:  enh.OriginalPrompt,
		EnhancementText: enh.EnhancementText,
		EnhancedPrompt:  enh.EnhancedPrompt,
		GlazeAnalysis:   toAnalyzeOutput(enh.Analysis),
	}, nil
}

func (s *Server) handleListColorants(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, listColorantsOutput, error) {
	return nil, listColorantsOutput{Colorants: glaze.Colorants()}, nil
}

func (s *Server) handleListFluxes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, listFluxesOutput, error) {
	return nil, listFluxesOutput{Fluxes: glaze.Fluxes()}, nil
}

func (s *Server) handleCompare(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	logger := logging.New("glaze-tools")
	requestID := uuid.NewString()

	cmp, err := glaze.Compare(input.GlazeA.toFormulation(), input.GlazeB.toFormulation())
	if err != nil {
		logger.Warn("compare rejected", "request_id", requestID, "error", err)
		return nil, compareOutput{}, fmt.Errorf("compare_glaze_formulations: %w", err)
	}

	logger.Info("formulations compared",
		"request_id", requestID,
		"glaze_a", cmp.A.GlazeName,
		"glaze_b", cmp.B.GlazeName)
	return nil, compareOutput{
		GlazeA: toAnalyzeOutput(cmp.A),
		GlazeB: toAnalyzeOutput(cmp.B),
		Deltas: cmp.Deltas,
	}, nil
}
