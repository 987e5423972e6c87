package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/cscmnu/lmfdb/internal/services/smf/family"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FamilyCatalog loads families.
type FamilyCatalog interface {
	Family(ctx context.Context, name string) (*family.Family, error)
	Families(ctx context.Context) ([]*family.Family, error)
}

// FamilyListInput represents the MCP tool input for listing families.
type FamilyListInput struct{}

// FamilySummary is one family as exposed to MCP clients.
type FamilySummary struct {
	Name              string   `json:"name" jsonschema:"family name"`
	LatexName         string   `json:"latex_name" jsonschema:"LaTeX rendering of the family name"`
	Degree            *int     `json:"degree,omitempty" jsonschema:"degree of the family, when known"`
	Order             *float64 `json:"order,omitempty" jsonschema:"display order"`
	ComputesDimension bool     `json:"computes_dimension" jsonschema:"whether a dimension formula is registered"`
	DimensionFunction string   `json:"dimension_function,omitempty" jsonschema:"registered dimension formula name"`
	DimensionArgs     []string `json:"dimension_args,omitempty" jsonschema:"parameter names of the dimension formula"`
}

// FamilyListResult represents the MCP tool output for listing families.
type FamilyListResult struct {
	Families []FamilySummary `json:"families" jsonschema:"families sorted by display order"`
}

// FamilyGetInput represents the MCP tool input for reading one family.
type FamilyGetInput struct {
	Name         string `json:"name" jsonschema:"family name"`
	SampleFilter string `json:"sample_filter,omitempty" jsonschema:"optional AIP-160 filter over name, weight, degree, field and is_eigenform"`
}

// SampleEntry is one sample form of a family.
type SampleEntry struct {
	Name            string `json:"name" jsonschema:"sample name"`
	Weight          int    `json:"weight" jsonschema:"weight"`
	Degree          int    `json:"degree" jsonschema:"degree"`
	Field           string `json:"field" jsonschema:"coefficient field label"`
	IsEigenform     bool   `json:"is_eigenform" jsonschema:"whether the sample is a Hecke eigenform"`
	ExplicitFormula string `json:"explicit_formula,omitempty" jsonschema:"explicit formula, when known"`
}

// FamilyGetResult represents the MCP tool output for reading one family.
type FamilyGetResult struct {
	Family            FamilySummary `json:"family" jsonschema:"family summary"`
	DimArgsDefault    []string      `json:"dim_args_default,omitempty" jsonschema:"default dimension arguments"`
	DimensionGlossary string        `json:"dimension_glossary,omitempty" jsonschema:"documentation of the dimension formula"`
	Samples           []SampleEntry `json:"samples" jsonschema:"samples of the family matching the filter"`
}

// FamilyDimensionInput represents the MCP tool input for evaluating dimensions.
type FamilyDimensionInput struct {
	Name string   `json:"name" jsonschema:"family name"`
	Args []string `json:"args,omitempty" jsonschema:"formula arguments; defaults to the family's dim_args_default"`
}

// DimensionRow is one evaluated row.
type DimensionRow struct {
	Key    string  `json:"key" jsonschema:"argument that produced the row"`
	Values []int64 `json:"values" jsonschema:"dimension values in header order"`
}

// FamilyDimensionResult represents the MCP tool output for dimension evaluation.
type FamilyDimensionResult struct {
	Family   string         `json:"family" jsonschema:"family name"`
	Function string         `json:"function" jsonschema:"dimension formula name"`
	Args     []string       `json:"args" jsonschema:"arguments used"`
	Headers  []string       `json:"headers" jsonschema:"column names"`
	Rows     []DimensionRow `json:"rows" jsonschema:"evaluated rows"`
}

// FamilyListTool defines the MCP tool schema for listing families.
func FamilyListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "smf_family_list",
		Description: "Lists Siegel modular form families ordered for display",
	}
}

// FamilyGetTool defines the MCP tool schema for reading one family.
func FamilyGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "smf_family_get",
		Description: "Reads one Siegel modular form family and its samples",
	}
}

// FamilyDimensionTool defines the MCP tool schema for dimension evaluation.
func FamilyDimensionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "smf_family_dimension",
		Description: "Evaluates the dimension formula of a Siegel modular form family",
	}
}

// FamilyListHandler executes a family list request.
func FamilyListHandler(catalog FamilyCatalog) mcp.ToolHandlerFor[FamilyListInput, FamilyListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ FamilyListInput) (*mcp.CallToolResult, FamilyListResult, error) {
		if catalog == nil {
			return nil, FamilyListResult{}, fmt.Errorf("family catalog is not configured")
		}
		families, err := catalog.Families(ctx)
		if err != nil {
			return nil, FamilyListResult{}, fmt.Errorf("family list failed: %w", err)
		}
		result := FamilyListResult{Families: make([]FamilySummary, 0, len(families))}
		for _, fam := range families {
			result.Families = append(result.Families, summarize(fam))
		}
		return nil, result, nil
	}
}

// FamilyGetHandler executes a family read request.
func FamilyGetHandler(catalog FamilyCatalog) mcp.ToolHandlerFor[FamilyGetInput, FamilyGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FamilyGetInput) (*mcp.CallToolResult, FamilyGetResult, error) {
		if catalog == nil {
			return nil, FamilyGetResult{}, fmt.Errorf("family catalog is not configured")
		}
		fam, err := catalog.Family(ctx, strings.TrimSpace(input.Name))
		if err != nil {
			return nil, FamilyGetResult{}, fmt.Errorf("family get failed: %w", err)
		}
		samples, err := fam.Samples().List(ctx, input.SampleFilter)
		if err != nil {
			return nil, FamilyGetResult{}, fmt.Errorf("sample list failed: %w", err)
		}
		result := FamilyGetResult{
			Family:            summarize(fam),
			DimArgsDefault:    fam.DimArgsDefault,
			DimensionGlossary: fam.DimensionGlossary(),
			Samples:           make([]SampleEntry, 0, len(samples)),
		}
		for _, sample := range samples {
			result.Samples = append(result.Samples, SampleEntry{
				Name:            sample.Name,
				Weight:          sample.Weight,
				Degree:          sample.Degree,
				Field:           sample.Field,
				IsEigenform:     sample.IsEigenform,
				ExplicitFormula: sample.ExplicitFormula,
			})
		}
		return nil, result, nil
	}
}

// FamilyDimensionHandler executes a dimension evaluation request.
func FamilyDimensionHandler(catalog FamilyCatalog) mcp.ToolHandlerFor[FamilyDimensionInput, FamilyDimensionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FamilyDimensionInput) (*mcp.CallToolResult, FamilyDimensionResult, error) {
		if catalog == nil {
			return nil, FamilyDimensionResult{}, fmt.Errorf("family catalog is not configured")
		}
		fam, err := catalog.Family(ctx, strings.TrimSpace(input.Name))
		if err != nil {
			return nil, FamilyDimensionResult{}, fmt.Errorf("family dimension failed: %w", err)
		}
		desc := fam.DimensionDesc()
		if desc == nil {
			return nil, FamilyDimensionResult{}, fmt.Errorf("family %q has no dimension formula", fam.Name)
		}
		args := input.Args
		if len(args) == 0 {
			args = fam.DimArgsDefault
		}
		table, err := fam.Dimension(args...)
		if err != nil {
			return nil, FamilyDimensionResult{}, fmt.Errorf("family dimension failed: %w", err)
		}
		result := FamilyDimensionResult{
			Family:   fam.Name,
			Function: desc.Name,
			Args:     args,
			Headers:  table.Headers,
			Rows:     make([]DimensionRow, 0, len(table.Rows)),
		}
		for _, row := range table.Rows {
			result.Rows = append(result.Rows, DimensionRow{Key: row.Key, Values: row.Values})
		}
		return nil, result, nil
	}
}

func summarize(fam *family.Family) FamilySummary {
	summary := FamilySummary{
		Name:              fam.Name,
		LatexName:         fam.LatexName,
		Degree:            fam.Degree,
		Order:             fam.Order,
		ComputesDimension: fam.ComputesDimension(),
	}
	if desc := fam.DimensionDesc(); desc != nil {
		summary.DimensionFunction = desc.Name
		summary.DimensionArgs = desc.Args
	}
	return summary
}
