package output

import (
	"time"

	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/domain/values"
)

// createTestReport returns a report with one file per status.
func createTestReport() *dto.ApplyReport {
	return &dto.ApplyReport{
		Tool:      "seclog",
		Version:   "1.0.0",
		Schema:    "flat",
		StartTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Results: []dto.FileResult{
			{
				Path:         "/etc/dds/ok.xml",
				InvocationID: values.NewInvocationID(),
				Status:       values.StatusApplied,
				Properties: []policy.Property{
					{Name: values.LogFileKey.String(), Value: "/var/log/sec.log"},
					{Name: values.DistributeDepthKey.String(), Value: "10"},
				},
			},
			{
				Path:         "/etc/dds/partial.xml",
				InvocationID: values.NewInvocationID(),
				Status:       values.StatusPartial,
				Properties: []policy.Property{
					{Name: values.LogFileKey.String(), Value: "b.log"},
				},
				ErrorKind: "UnknownProfile",
				Error:     "failed to set security logging profile: FAST is not a supported profile",
			},
			{
				Path:         "/etc/dds/missing.xml",
				InvocationID: values.NewInvocationID(),
				Status:       values.StatusFailed,
				ErrorKind:    "MissingRootElement",
				Error:        "failed to set security logging security_log: logger xml file missing 'security_log'",
			},
		},
	}
}
