package models

type UserStatus string
type UserRole string
type JobStatus string
type ApplicationStatus string
type SessionStatus string
type QuestionType string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft    JobStatus = "draft"
	JobStatusOpen     JobStatus = "open"
	JobStatusClosed   JobStatus = "closed"
	JobStatusArchived JobStatus = "archived"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReview    ApplicationStatus = "review"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"

	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusExpired   SessionStatus = "expired"

	QuestionTypeTechnical    QuestionType = "technical"
	QuestionTypeBehavioral   QuestionType = "behavioral"
	QuestionTypeSituational  QuestionType = "situational"
	QuestionTypeIntroduction QuestionType = "introduction"
	QuestionTypeGeneral      QuestionType = "general"
)

// ApplicationStatusTransitions is the legal status transition map. An empty
// list means the status is terminal.
var ApplicationStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusSubmitted: {ApplicationStatusReview, ApplicationStatusRejected},
	ApplicationStatusReview:    {ApplicationStatusInterview, ApplicationStatusRejected},
	ApplicationStatusInterview: {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusRejected:  {},
	ApplicationStatusAccepted:  {},
}

// CanTransitionTo reports whether an application may move between statuses.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range ApplicationStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidQuestionType reports whether t names a known question type.
func IsValidQuestionType(t string) bool {
	switch QuestionType(t) {
	case QuestionTypeTechnical, QuestionTypeBehavioral, QuestionTypeSituational,
		QuestionTypeIntroduction, QuestionTypeGeneral:
		return true
	}
	return false
}
