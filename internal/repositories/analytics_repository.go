package repositories

import (
	"database/sql"
)

type AnalyticsRepository interface {
	GetJobStatusCounts(recruiterID string) (map[string]int64, error)
	GetApplicationsPerJob(recruiterID string, limit int) ([]JobApplicationCount, error)
	GetAverageScoreByJob(recruiterID string) ([]JobScoreAverage, error)
	GetScoreDistribution(recruiterID string) (map[string]int64, error)
	GetTopApplicantSkills(recruiterID string, limit int) ([]SkillCount, error)
}

type analyticsRepository struct {
	db *sql.DB
}

type JobApplicationCount struct {
	JobID        string `json:"job_id"`
	Title        string `json:"title"`
	Applications int64  `json:"applications"`
}

type JobScoreAverage struct {
	JobID        string  `json:"job_id"`
	Title        string  `json:"title"`
	AverageScore float64 `json:"average_score"`
	Sessions     int64   `json:"sessions"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetJobStatusCounts(recruiterID string) (map[string]int64, error) {
	rows, err := r.db.Query(`
        SELECT status, COUNT(*) FROM jobs WHERE recruiter_id = $1 GROUP BY status
    `, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result[status] = count
	}
	return result, rows.Err()
}

func (r *analyticsRepository) GetApplicationsPerJob(recruiterID string, limit int) ([]JobApplicationCount, error) {
	rows, err := r.db.Query(`
        SELECT j.id, j.title, COUNT(a.id)
        FROM jobs j
        LEFT JOIN applications a ON a.job_id = j.id
        WHERE j.recruiter_id = $1
        GROUP BY j.id, j.title
        ORDER BY COUNT(a.id) DESC
        LIMIT $2
    `, recruiterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []JobApplicationCount
	for rows.Next() {
		var c JobApplicationCount
		if err := rows.Scan(&c.JobID, &c.Title, &c.Applications); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) GetAverageScoreByJob(recruiterID string) ([]JobScoreAverage, error) {
	rows, err := r.db.Query(`
        SELECT j.id, j.title,
               COALESCE(AVG(ra.overall_score), 0),
               COUNT(DISTINCT s.id)
        FROM jobs j
        JOIN interview_sessions s ON s.job_id = j.id
        JOIN interview_responses ir ON ir.session_id = s.id
        JOIN response_analyses ra ON ra.response_id = ir.id
        WHERE j.recruiter_id = $1
        GROUP BY j.id, j.title
        ORDER BY AVG(ra.overall_score) DESC
    `, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var averages []JobScoreAverage
	for rows.Next() {
		var a JobScoreAverage
		if err := rows.Scan(&a.JobID, &a.Title, &a.AverageScore, &a.Sessions); err != nil {
			return nil, err
		}
		averages = append(averages, a)
	}
	return averages, rows.Err()
}

func (r *analyticsRepository) GetScoreDistribution(recruiterID string) (map[string]int64, error) {
	rows, err := r.db.Query(`
        SELECT CASE
                 WHEN ra.overall_score >= 90 THEN 'excellent'
                 WHEN ra.overall_score >= 75 THEN 'good'
                 WHEN ra.overall_score >= 60 THEN 'decent'
                 WHEN ra.overall_score >= 40 THEN 'weak'
                 ELSE 'poor'
               END AS bucket,
               COUNT(*)
        FROM response_analyses ra
        JOIN interview_responses ir ON ir.id = ra.response_id
        JOIN interview_sessions s ON s.id = ir.session_id
        JOIN jobs j ON j.id = s.job_id
        WHERE j.recruiter_id = $1
        GROUP BY bucket
    `, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[string]int64{
		"excellent": 0,
		"good":      0,
		"decent":    0,
		"weak":      0,
		"poor":      0,
	}
	for rows.Next() {
		var bucket string
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		result[bucket] = count
	}
	return result, rows.Err()
}

func (r *analyticsRepository) GetTopApplicantSkills(recruiterID string, limit int) ([]SkillCount, error) {
	rows, err := r.db.Query(`
        SELECT skill, COUNT(*) AS cnt
        FROM (
            SELECT unnest(cp.skills) AS skill
            FROM candidate_profiles cp
            JOIN applications a ON a.candidate_id = cp.user_id
            JOIN jobs j ON j.id = a.job_id
            WHERE j.recruiter_id = $1
        ) AS applicant_skills
        GROUP BY skill
        ORDER BY cnt DESC
        LIMIT $2
    `, recruiterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []SkillCount
	for rows.Next() {
		var s SkillCount
		if err := rows.Scan(&s.Skill, &s.Count); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
