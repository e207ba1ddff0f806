package enum

type Assessment string

const (
	AssessmentSafe  Assessment = "safe"
	AssessmentRisky Assessment = "risky"
)

func (t Assessment) String() string {
	return string(t)
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusRejected  LeadStatus = "rejected"
)

func (t LeadStatus) String() string {
	return string(t)
}

type TodoStatus string

const (
	TodoStatusOpen    TodoStatus = "open"
	TodoStatusDone    TodoStatus = "done"
	TodoStatusDeleted TodoStatus = "deleted"
)

func (t TodoStatus) String() string {
	return string(t)
}
