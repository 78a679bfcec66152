package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the business-logic errors the
services return. Repository sentinel errors get wrapped through these so
handlers only ever see AppError.
*/

// =========================================================================
// Factory functions (wrap repository errors)
// =========================================================================

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// =========================================================================
// Factory functions (fresh errors)
// =========================================================================

// ErrInvalidOperation flags an operation the domain does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an operation illegal in the current status (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInvalidUserRole rejects operations not available to the caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrCannotModifySelf rejects admin operations targeting the caller itself.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// ErrInsufficientPermissions rejects admin-only actions for non-admins.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Auth & user status ---

// ErrWeakPassword rejects passwords failing the strength rule.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists rejects registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials covers both unknown email and wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers expired and malformed refresh/verify tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserSuspended blocks suspended accounts from signing in.
var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// ErrUserBanned blocks banned accounts from signing in.
var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

// --- Profile ---

// ErrProfileNotPublic hides private candidate profiles from search.
var ErrProfileNotPublic = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)

// --- Jobs ---

// ErrInvalidJobStatus rejects operations illegal in the job's current status.
var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Operation not allowed for the current job status",
	http.StatusConflict,
)

// ErrJobDeadlinePassed rejects applications to jobs past their deadline.
var ErrJobDeadlinePassed = New(
	CodeInvalidOperation,
	"job",
	"The application deadline for this job has passed",
	http.StatusBadRequest,
)

// --- Applications ---

// ErrDuplicateApplication rejects a second application to the same job.
var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrInvalidStatusTransition rejects status changes outside the transition map.
var ErrInvalidStatusTransition = New(
	CodeInvalidStatus,
	"application",
	"Illegal application status transition",
	http.StatusConflict,
)

// --- Interviews ---

// ErrSessionNotActive rejects submissions to completed or expired sessions.
var ErrSessionNotActive = New(
	CodeInvalidStatus,
	"interview",
	"Interview session is not active",
	http.StatusConflict,
)

// ErrSessionEmpty rejects completing a session with no responses.
var ErrSessionEmpty = New(
	CodeInvalidOperation,
	"interview",
	"Cannot complete a session without responses",
	http.StatusBadRequest,
)

// ErrQuestionInactive rejects answering a question pulled from rotation.
var ErrQuestionInactive = New(
	CodeInvalidOperation,
	"interview",
	"This question is no longer active",
	http.StatusBadRequest,
)
