// @title           TalentIQ API
// @version         1.0
// @description     Recruitment platform with automated interview analysis (Swagger documentation).
// @contact.name    TalentIQ Team
// @contact.email   support@talentiq.dev
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "talentiq_backend/internal/app"

func main() {
	app.Run()
}
