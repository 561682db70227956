package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/values"
)

const (
	// ruleApplied is reported for files that applied cleanly
	ruleApplied = "Applied"
	// ruleConfiguration covers failures that are not translation errors,
	// such as rejected seed properties
	ruleConfiguration = "Configuration"
)

// ruleDescriptions documents every rule the mapper can emit.
var ruleDescriptions = []struct {
	id, name, description string
}{
	{ruleApplied, "applied", "Logging configuration applied to the property policy"},
	{"MissingRootElement", "missing-root-element", "The file is missing, unreadable, malformed, or lacks the expected root element"},
	{"EmptyFormat", "empty-format", "An element is present but carries no text"},
	{"UnknownProfile", "unknown-profile", "The qos profile name is not a built-in profile"},
	{"UnknownVerbosity", "unknown-verbosity", "The verbosity name is not a supported level"},
	{"WriteFailure", "write-failure", "The property policy rejected a property"},
	{"NumericFormatFailure", "numeric-format-failure", "The history depth could not be rendered as text"},
	{ruleConfiguration, "configuration", "The policy could not be prepared for translation"},
}

type sarifMapper struct {
	report    *dto.ApplyReport
	cwd       string                     // Current working directory
	artifacts map[string]*sarif.Artifact // Deduplicated artifacts
	order     []string                   // Artifact URIs in first-seen order
}

func newSARIFMapper(report *dto.ApplyReport) *sarifMapper {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &sarifMapper{
		report:    report,
		cwd:       cwd,
		artifacts: make(map[string]*sarif.Artifact),
	}
}

// mapToRun populates the SARIF run with rules, results, artifacts, and invocations.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addArtifacts(run)
	m.addInvocation(run)
	m.addProperties(run)
}

func (m *sarifMapper) addRules(run *sarif.Run) {
	for _, d := range ruleDescriptions {
		rule := sarif.NewReportingDescriptor().WithID(d.id)
		rule.WithName(d.name)

		description := d.description
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &description,
		})

		level := "error"
		if d.id == ruleApplied {
			level = "note"
		}
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: level,
		})

		run.Tool.Driver.AddRule(rule)
	}
}

func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, res := range m.report.Results {
		run.AddResult(m.mapFileResult(res))
	}
}

// mapFileResult converts a single FileResult to a SARIF Result.
func (m *sarifMapper) mapFileResult(res dto.FileResult) *sarif.Result {
	result := sarif.NewRuleResult(ruleID(res))

	result.Level = m.mapStatusToLevel(res.Status)
	result.Kind = m.mapStatusToKind(res.Status)

	msg := res.Error
	if msg == "" {
		msg = m.generateDefaultMessage(res)
	}
	result.Message = sarif.NewTextMessage(msg)

	if res.Path != "" {
		result.Locations = []*sarif.Location{m.createLocation(res.Path)}
	}

	props := sarif.NewPropertyBag()
	props.Add("status", string(res.Status))
	props.Add("invocationId", res.InvocationID.String())
	props.Add("properties", res.Properties)
	result.WithProperties(props)

	return result
}

func ruleID(res dto.FileResult) string {
	switch {
	case res.Status == values.StatusApplied:
		return ruleApplied
	case res.ErrorKind != "":
		return res.ErrorKind
	default:
		return ruleConfiguration
	}
}

func (m *sarifMapper) mapStatusToLevel(status values.Status) string {
	switch status {
	case values.StatusApplied:
		return "note"
	case values.StatusPartial, values.StatusFailed:
		return "error"
	default:
		return "warning"
	}
}

func (m *sarifMapper) mapStatusToKind(status values.Status) string {
	if status == values.StatusApplied {
		return "pass"
	}
	return "fail"
}

func (m *sarifMapper) createLocation(path string) *sarif.Location {
	uri := m.normalizeURI(path)
	m.registerArtifact(path, uri)

	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri))

	return sarif.NewLocation().WithPhysicalLocation(pLoc)
}

// normalizeURI converts a file path to a SARIF-compliant URI.
func (m *sarifMapper) normalizeURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path) // Fallback to original
	}

	if m.cwd != "" {
		if rel, err := filepath.Rel(m.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return "file://" + filepath.ToSlash(abs)
}

// registerArtifact adds a file to the artifacts map (deduplicated).
func (m *sarifMapper) registerArtifact(path, uri string) {
	if _, exists := m.artifacts[uri]; exists {
		return
	}

	artifact := sarif.NewArtifact().
		WithLocation(sarif.NewArtifactLocation().WithURI(uri))

	// Embed small files so viewers can show the offending configuration
	const maxContentSize = 512 * 1024
	if info, err := os.Stat(path); err == nil && !info.IsDir() && info.Size() < maxContentSize {
		//nolint:gosec // G304: path is a configuration file the user asked to apply
		if content, err := os.ReadFile(path); err == nil {
			artifact.WithContents(sarif.NewArtifactContent().WithText(string(content)))
			artifact.WithLength(len(content))
		}
	}

	m.artifacts[uri] = artifact
	m.order = append(m.order, uri)
}

func (m *sarifMapper) addArtifacts(run *sarif.Run) {
	for _, uri := range m.order {
		run.AddArtifact(m.artifacts[uri])
	}
}

// addInvocation adds execution metadata to the run.
func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()

	invocation.ExecutionSuccessful = ptrBool(m.report.Failed() == 0)

	startTime := m.report.StartTime.UTC().Format("2006-01-02T15:04:05.000Z")
	endTime := m.report.StartTime.Add(m.report.Duration).UTC().Format("2006-01-02T15:04:05.000Z")
	invocation.StartTimeUtc = &startTime
	invocation.EndTimeUtc = &endTime

	if hostname, err := os.Hostname(); err == nil {
		invocation.Machine = &hostname
	}

	if m.cwd != "" {
		cwd := "file://" + filepath.ToSlash(m.cwd)
		invocation.WorkingDirectory = sarif.NewArtifactLocation().WithURI(cwd)
	}

	props := sarif.NewPropertyBag()
	props.Add("schema", m.report.Schema)
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

func (m *sarifMapper) addProperties(run *sarif.Run) {
	counts := map[string]int{
		string(values.StatusApplied): 0,
		string(values.StatusPartial): 0,
		string(values.StatusFailed):  0,
	}
	for _, res := range m.report.Results {
		counts[string(res.Status)]++
	}

	props := sarif.NewPropertyBag()
	props.Add("summary", counts)
	run.WithProperties(props)
}

func (m *sarifMapper) generateDefaultMessage(res dto.FileResult) string {
	switch res.Status {
	case values.StatusApplied:
		return fmt.Sprintf("Applied %d properties from %s", len(res.Properties), res.Path)
	case values.StatusPartial:
		return fmt.Sprintf("Partially applied %s", res.Path)
	case values.StatusFailed:
		return fmt.Sprintf("Failed to apply %s", res.Path)
	default:
		return fmt.Sprintf("%s completed with status %s", res.Path, res.Status)
	}
}
