package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/seclog/internal/application/dto"
	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// ApplyFilesUseCase translates a batch of files, each into its own policy.
type ApplyFilesUseCase struct {
	translator *Translator
	version    string
	logger     *slog.Logger
}

// NewApplyFilesUseCase creates a new apply files use case.
func NewApplyFilesUseCase(translator *Translator, version string, logger *slog.Logger) *ApplyFilesUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &ApplyFilesUseCase{
		translator: translator,
		version:    version,
		logger:     logger,
	}
}

// Execute translates every path in req. Per-file failures are recorded in
// the report; the returned error is reserved for setup problems.
func (uc *ApplyFilesUseCase) Execute(ctx context.Context, req dto.ApplyRequest) (*dto.ApplyReport, error) {
	startTime := time.Now()
	results := make([]dto.FileResult, len(req.Paths))

	g, gctx := errgroup.WithContext(ctx)
	if req.Options.Jobs > 0 {
		g.SetLimit(req.Options.Jobs)
	}

	for i, path := range req.Paths {
		g.Go(func() error {
			results[i] = uc.applyOne(gctx, path, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &dto.ApplyReport{
		Tool:      "seclog",
		Version:   uc.version,
		Schema:    uc.translator.Schema(),
		StartTime: startTime,
		Duration:  time.Since(startTime),
		Results:   results,
	}

	uc.logger.Info("apply finished", "files", len(results), "failed", report.Failed(), "duration", report.Duration)
	return report, nil
}

func (uc *ApplyFilesUseCase) applyOne(ctx context.Context, path string, req dto.ApplyRequest) dto.FileResult {
	store := policy.New(policy.WithMaxLength(req.Options.MaxProperties))
	result := dto.FileResult{
		Path:         path,
		InvocationID: values.NewInvocationID(),
		Status:       values.StatusApplied,
	}

	// Files not started before the deadline are reported, not translated
	if err := ctx.Err(); err != nil {
		result.Status = values.StatusFailed
		result.Error = fmt.Sprintf("logging configuration %s not applied: %v", path, err)
		result.Properties = store.Properties()
		uc.logger.Warn("skipped logging configuration", "path", path, "error", err)
		return result
	}

	for _, p := range req.Seed {
		// Seeds are the caller's own data; a rejected seed is a failed file
		if err := store.Add(p.Name, p.Value, p.Propagate); err != nil {
			result.Status = values.StatusFailed
			result.Error = apperrors.NewConfigurationError("seed", "failed to add property "+p.Name, err).Error()
			result.Properties = store.Properties()
			return result
		}
	}

	snapshot := store.Snapshot()
	if err := uc.translator.apply(ctx, result.InvocationID, path, store); err != nil {
		result.ErrorKind = apperrors.KindName(err)
		result.Error = err.Error()

		switch {
		case req.Options.Atomic:
			store.Restore(snapshot)
			result.Status = values.StatusFailed
		case changed(snapshot, store):
			result.Status = values.StatusPartial
		default:
			result.Status = values.StatusFailed
		}

		uc.logger.Warn("failed to apply logging configuration",
			"path", path,
			"invocation_id", result.InvocationID.String(),
			"error", err,
		)
	}

	result.Properties = store.Properties()
	return result
}

// changed reports whether store holds different properties than before.
// Order is ignored: rewriting a key with its old value moves it to the end.
func changed(before, store *policy.PropertyPolicy) bool {
	if before.Len() != store.Len() {
		return true
	}
	for _, p := range before.Properties() {
		got, ok := store.Lookup(p.Name)
		if !ok || got != p {
			return true
		}
	}
	return false
}
