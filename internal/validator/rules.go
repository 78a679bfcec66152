package validator

import (
	"log"

	"talentiq_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the project's custom validation tags on
// the given validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-question-type", validateQuestionType)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
}

// Each rule accepts the empty string: 'required' handles empties.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleCandidate, models.UserRoleRecruiter, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateQuestionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidQuestionType(value)
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusOpen, models.JobStatusClosed, models.JobStatusArchived:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusSubmitted, models.ApplicationStatusReview,
		models.ApplicationStatusInterview, models.ApplicationStatusRejected,
		models.ApplicationStatusAccepted:
		return true
	default:
		return false
	}
}
