package dto

import "time"

// ==============================
// RECRUITER DASHBOARD
// ==============================

// RecruiterDashboard aggregates everything the recruiter overview page
// renders. Assembled from several queries and cached as one unit.
type RecruiterDashboard struct {
	JobStatusCounts    map[string]int64     `json:"job_status_counts"`
	ApplicationsPerJob []JobApplicationStat `json:"applications_per_job"`
	ScoresByJob        []JobScoreStat       `json:"scores_by_job"`
	ScoreDistribution  map[string]int64     `json:"score_distribution"`
	TopApplicantSkills []SkillStat          `json:"top_applicant_skills"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

type JobApplicationStat struct {
	JobID        string `json:"job_id"`
	Title        string `json:"title"`
	Applications int64  `json:"applications"`
}

type JobScoreStat struct {
	JobID        string  `json:"job_id"`
	Title        string  `json:"title"`
	AverageScore float64 `json:"average_score"`
	Sessions     int64   `json:"sessions"`
}

type SkillStat struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}
