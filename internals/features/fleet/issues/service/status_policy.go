package service

import (
	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/issues/model"
)

// Status policy: how issue events drive the linked asset's status.
//
// Issue statuses are admin-settable in any order (reported, acknowledged,
// in_repair, resolved); there is no enforced sequence, only a terminal state.

// StatusOnReport returns the asset status forced by a newly reported issue.
// A high-severity issue or an outright breakdown takes the asset out of
// service; anything else leaves the asset untouched.
func StatusOnReport(severity, issueType string) (string, bool) {
	if severity == model.SeverityHigh || issueType == model.IssueTypeBreakdown {
		return assetModel.AssetStatusOutOfService, true
	}
	return "", false
}

// StatusOnResolve returns the asset status forced by resolving an issue.
// The asset is made available regardless of other open issues against it.
func StatusOnResolve() string {
	return assetModel.AssetStatusAvailable
}

// IsTerminal reports whether an issue status is final.
func IsTerminal(issueStatus string) bool {
	return issueStatus == model.IssueStatusResolved
}

// NonTerminalStatuses lists the statuses an open-issue filter matches.
func NonTerminalStatuses() []string {
	all := []string{
		model.IssueStatusReported,
		model.IssueStatusAcknowledged,
		model.IssueStatusInRepair,
		model.IssueStatusResolved,
	}
	open := make([]string, 0, len(all))
	for _, s := range all {
		if !IsTerminal(s) {
			open = append(open, s)
		}
	}
	return open
}

func ValidIssueStatus(s string) bool {
	switch s {
	case model.IssueStatusReported, model.IssueStatusAcknowledged,
		model.IssueStatusInRepair, model.IssueStatusResolved:
		return true
	}
	return false
}

func ValidSeverity(s string) bool {
	switch s {
	case model.SeverityLow, model.SeverityMedium, model.SeverityHigh:
		return true
	}
	return false
}

func ValidIssueType(t string) bool {
	switch t {
	case model.IssueTypeDamage, model.IssueTypeBreakdown, model.IssueTypeBattery,
		model.IssueTypeTyres, model.IssueTypeBrakes, model.IssueTypeOther:
		return true
	}
	return false
}
