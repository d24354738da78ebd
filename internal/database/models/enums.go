package models

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleTeamLead UserRole = "team_lead"
	UserRoleCRE      UserRole = "cre"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleTeamLead, UserRoleCRE:
		return true
	}
	return false
}

// CanManageAssignmentRules reports whether the role may create, update or
// delete assignment rules and their members.
func (r UserRole) CanManageAssignmentRules() bool {
	return r == UserRoleAdmin || r == UserRoleTeamLead
}

// CanManageLeads reports whether the role may manually assign leads.
func (r UserRole) CanManageLeads() bool {
	return r == UserRoleAdmin || r == UserRoleTeamLead
}

// SourceType represents where leads of a source originate from
type SourceType string

const (
	SourceTypeMeta       SourceType = "meta"
	SourceTypeKnowlarity SourceType = "knowlarity_call"
	SourceTypeWalkIn     SourceType = "walk_in"
	SourceTypeWebsite    SourceType = "website"
	SourceTypeManual     SourceType = "manual"
)

// IsValid checks if the source type is valid
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeMeta, SourceTypeKnowlarity, SourceTypeWalkIn, SourceTypeWebsite, SourceTypeManual:
		return true
	}
	return false
}

// LeadStatus represents the sales pipeline status of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusConverted LeadStatus = "converted"
)

// IsValid checks if the lead status is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost, LeadStatusConverted:
		return true
	}
	return false
}

// RuleType selects the distribution strategy of an assignment rule
type RuleType string

const (
	RuleTypeRoundRobin RuleType = "round_robin"
	RuleTypeWeighted   RuleType = "weighted"
)

// IsValid checks if the rule type is valid
func (t RuleType) IsValid() bool {
	return t == RuleTypeRoundRobin || t == RuleTypeWeighted
}

// WeightedMode selects how a weighted rule distributes leads
type WeightedMode string

const (
	// WeightedModePercentage draws the assignee pseudo-randomly in
	// proportion to member percentages.
	WeightedModePercentage WeightedMode = "percentage"
	// WeightedModeWeight converges to weight-proportional counts
	// deterministically, without randomness.
	WeightedModeWeight WeightedMode = "weight"
)

// IsValid checks if the weighted mode is valid
func (m WeightedMode) IsValid() bool {
	return m == WeightedModePercentage || m == WeightedModeWeight
}

// AssignmentAction distinguishes how a lead received its assignee
type AssignmentAction string

const (
	ActionManualAssignment AssignmentAction = "manual_assignment"
	ActionAutoAssignment   AssignmentAction = "auto_assignment"
)

// IsValid checks if the assignment action is valid
func (a AssignmentAction) IsValid() bool {
	return a == ActionManualAssignment || a == ActionAutoAssignment
}
