package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	InterviewHandler    *InterviewHandler
	MatchingHandler     *MatchingHandler
	NotificationHandler *NotificationHandler
	AnalyticsHandler    *AnalyticsHandler
	AdminHandler        *AdminHandler
}
