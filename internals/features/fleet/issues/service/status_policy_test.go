package service

import (
	"testing"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/issues/model"
)

func TestStatusOnReport(t *testing.T) {
	tests := []struct {
		name      string
		severity  string
		issueType string
		want      string
		forced    bool
	}{
		{"low tyres leaves asset alone", model.SeverityLow, model.IssueTypeTyres, "", false},
		{"medium damage leaves asset alone", model.SeverityMedium, model.IssueTypeDamage, "", false},
		{"high damage forces out_of_service", model.SeverityHigh, model.IssueTypeDamage, assetModel.AssetStatusOutOfService, true},
		{"breakdown forces regardless of severity", model.SeverityLow, model.IssueTypeBreakdown, assetModel.AssetStatusOutOfService, true},
		{"high breakdown forces", model.SeverityHigh, model.IssueTypeBreakdown, assetModel.AssetStatusOutOfService, true},
		{"low battery leaves asset alone", model.SeverityLow, model.IssueTypeBattery, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, forced := StatusOnReport(tt.severity, tt.issueType)
			if forced != tt.forced {
				t.Fatalf("StatusOnReport(%q, %q) forced = %v, want %v", tt.severity, tt.issueType, forced, tt.forced)
			}
			if got != tt.want {
				t.Fatalf("StatusOnReport(%q, %q) = %q, want %q", tt.severity, tt.issueType, got, tt.want)
			}
		})
	}
}

func TestStatusOnResolve(t *testing.T) {
	if got := StatusOnResolve(); got != assetModel.AssetStatusAvailable {
		t.Fatalf("StatusOnResolve() = %q, want %q", got, assetModel.AssetStatusAvailable)
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(model.IssueStatusResolved) {
		t.Fatal("resolved should be terminal")
	}
	for _, s := range []string{model.IssueStatusReported, model.IssueStatusAcknowledged, model.IssueStatusInRepair} {
		if IsTerminal(s) {
			t.Fatalf("%q should not be terminal", s)
		}
	}
}

func TestNonTerminalStatuses(t *testing.T) {
	open := NonTerminalStatuses()
	if len(open) != 3 {
		t.Fatalf("got %d open statuses, want 3", len(open))
	}
	for _, s := range open {
		if IsTerminal(s) {
			t.Fatalf("%q is terminal but listed as open", s)
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidIssueType("breakdown") || ValidIssueType("flood") {
		t.Fatal("ValidIssueType misbehaves")
	}
	if !ValidSeverity("high") || ValidSeverity("critical") {
		t.Fatal("ValidSeverity misbehaves")
	}
	if !ValidIssueStatus("in_repair") || ValidIssueStatus("open") {
		t.Fatal("ValidIssueStatus misbehaves")
	}
}
