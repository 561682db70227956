package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/seclog/internal/application/dto"
	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
)

// DefaultFailOn fails a batch when any file did not apply cleanly.
const DefaultFailOn = `status != "applied"`

// FileEnv is the environment a --fail-on expression is evaluated against.
type FileEnv struct {
	Path       string            `expr:"path"`
	Status     string            `expr:"status"`
	ErrorKind  string            `expr:"error_kind"`
	Properties map[string]string `expr:"properties"`
}

// FailPolicy decides which file results fail a batch.
type FailPolicy struct {
	source  string
	program *vm.Program
}

// NewFailPolicy compiles expression once. An empty expression selects
// DefaultFailOn.
func NewFailPolicy(expression string) (*FailPolicy, error) {
	if expression == "" {
		expression = DefaultFailOn
	}

	program, err := expr.Compile(expression, expr.Env(FileEnv{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewConfigurationError(
			"fail-on",
			fmt.Sprintf("invalid expression %q (example: status == \"failed\" || error_kind == \"UnknownProfile\")", expression),
			err,
		)
	}

	return &FailPolicy{source: expression, program: program}, nil
}

// String returns the policy expression.
func (p *FailPolicy) String() string {
	return p.source
}

// Fails reports whether res fails the batch.
func (p *FailPolicy) Fails(res dto.FileResult) (bool, error) {
	env := FileEnv{
		Path:       res.Path,
		Status:     string(res.Status),
		ErrorKind:  res.ErrorKind,
		Properties: make(map[string]string, len(res.Properties)),
	}
	for _, prop := range res.Properties {
		env.Properties[prop.Name] = prop.Value
	}

	output, err := expr.Run(p.program, env)
	if err != nil {
		return false, fmt.Errorf("fail-on expression error for %s: %w", res.Path, err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("fail-on expression did not return boolean: %v", output)
	}
	return result, nil
}

// Failing returns the results in report that fail the batch, in report order.
func (p *FailPolicy) Failing(report *dto.ApplyReport) ([]dto.FileResult, error) {
	var failing []dto.FileResult
	for _, res := range report.Results {
		fails, err := p.Fails(res)
		if err != nil {
			return nil, err
		}
		if fails {
			failing = append(failing, res)
		}
	}
	return failing, nil
}
