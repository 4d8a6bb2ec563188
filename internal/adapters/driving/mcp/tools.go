package mcp

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// CalculateInput is the input schema for the calculate tool.
type CalculateInput struct {
	Operation string `json:"operation" jsonschema:"operation name such as combination, stirling2, fibonacci or analyze"`
	Input     string `json:"input" jsonschema:"whole numbers separated by commas or spaces, e.g. 5, 2"`
	Notation  string `json:"notation,omitempty" jsonschema:"plain or latex (default from settings)"`
	ShowSteps *bool  `json:"show_steps,omitempty" jsonschema:"include derivation steps (default from settings)"`
}

// AnalyzeInput is the input schema for the analyze_number tool.
type AnalyzeInput struct {
	N        int    `json:"n" jsonschema:"the positive integer to analyse"`
	Notation string `json:"notation,omitempty" jsonschema:"plain or latex (default from settings)"`
}

// ListOperationsInput is the input schema for the list_operations tool.
type ListOperationsInput struct{}

// CalculationOutput is the output schema for the calculate and
// analyze_number tools.
type CalculationOutput struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Input     []int          `json:"input"`
	Value     string         `json:"value,omitempty"`
	Profile   *ProfileOutput `json:"profile,omitempty"`
	Lines     []string       `json:"lines"`
}

// ProfileOutput is the machine-readable part of a number analysis.
type ProfileOutput struct {
	N                  int             `json:"n"`
	IsPrime            bool            `json:"is_prime"`
	IsEven             bool            `json:"is_even"`
	IsOdd              bool            `json:"is_odd"`
	IsPerfectSquare    bool            `json:"is_perfect_square"`
	IsPerfect          bool            `json:"is_perfect"`
	Divisors           []int           `json:"divisors"`
	DivisorCount       int             `json:"divisor_count"`
	DivisorSum         int             `json:"divisor_sum"`
	PrimeFactorization []PrimePowerOut `json:"prime_factorization"`
	Totient            int             `json:"totient"`
}

// PrimePowerOut is one prime factor with its exponent.
type PrimePowerOut struct {
	Prime    int `json:"prime"`
	Exponent int `json:"exponent"`
}

// ListOperationsOutput is the output schema for the list_operations tool.
type ListOperationsOutput struct {
	Operations []OperationOutput `json:"operations"`
	Count      int               `json:"count"`
}

// OperationOutput is one catalogue entry.
type OperationOutput struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	InputFormat string `json:"input_format"`
	Formula     string `json:"formula"`
	FormulaTeX  string `json:"formula_latex"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculate",
		Description: "Run an exact combinatorial, sequence or number-analysis operation with a derivation trace",
	}, s.handleCalculate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_number",
		Description: "Describe a positive integer: primality, divisors, factorization and totient",
	}, s.handleAnalyzeNumber)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the supported operations with their formulas and input formats",
	}, s.handleListOperations)
}

// handleCalculate handles the calculate tool invocation.
func (s *Server) handleCalculate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalculateInput,
) (*mcp.CallToolResult, CalculationOutput, error) {
	req := domain.Request{
		Operation: domain.Operation(input.Operation),
		RawInput:  input.Input,
		Notation:  domain.Notation(input.Notation),
		ShowSteps: input.ShowSteps,
	}
	return s.calculate(ctx, req)
}

// handleAnalyzeNumber handles the analyze_number tool invocation.
func (s *Server) handleAnalyzeNumber(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, CalculationOutput, error) {
	req := domain.Request{
		Operation: domain.OpAnalyze,
		RawInput:  strconv.Itoa(input.N),
		Notation:  domain.Notation(input.Notation),
	}
	return s.calculate(ctx, req)
}

func (s *Server) calculate(ctx context.Context, req domain.Request) (*mcp.CallToolResult, CalculationOutput, error) {
	calc, err := s.ports.Calculator.Calculate(ctx, req)
	if err != nil {
		return nil, CalculationOutput{}, err
	}
	return nil, toCalculationOutput(calc), nil
}

// handleListOperations handles the list_operations tool invocation.
func (s *Server) handleListOperations(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListOperationsInput,
) (*mcp.CallToolResult, ListOperationsOutput, error) {
	infos := s.ports.Calculator.Operations()

	output := ListOperationsOutput{
		Operations: make([]OperationOutput, len(infos)),
		Count:      len(infos),
	}
	for i, info := range infos {
		output.Operations[i] = OperationOutput{
			Name:        info.Operation.String(),
			Title:       info.Title,
			Description: info.Description,
			InputFormat: info.InputFormat,
			Formula:     info.Formula.Plain,
			FormulaTeX:  info.Formula.LaTeX,
		}
	}

	return nil, output, nil
}

// toCalculationOutput flattens a calculation into the tool schema.
// Slices are never nil so the structured output always validates.
func toCalculationOutput(calc *domain.Calculation) CalculationOutput {
	output := CalculationOutput{
		ID:        calc.ID,
		Operation: calc.Operation.String(),
		Input:     append([]int{}, calc.Input.Values...),
		Lines:     append([]string{}, calc.Lines...),
	}
	if calc.Result != nil && calc.Result.Value != nil {
		output.Value = calc.Result.Value.String()
	}

	if p := calc.Profile; p != nil {
		profile := &ProfileOutput{
			N:                  p.N,
			IsPrime:            p.IsPrime,
			IsEven:             p.IsEven,
			IsOdd:              p.IsOdd,
			IsPerfectSquare:    p.IsPerfectSquare,
			IsPerfect:          p.IsPerfect,
			Divisors:           append([]int{}, p.Divisors...),
			DivisorCount:       p.DivisorCount,
			DivisorSum:         p.DivisorSum,
			PrimeFactorization: make([]PrimePowerOut, len(p.PrimeFactorization)),
			Totient:            p.Totient,
		}
		for i, pp := range p.PrimeFactorization {
			profile.PrimeFactorization[i] = PrimePowerOut{Prime: pp.Prime, Exponent: pp.Exponent}
		}
		output.Profile = profile
	}

	return output
}
