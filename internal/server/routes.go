// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"HireHub-backend/internal/auth"
	"HireHub-backend/internal/controller/account"
	"HireHub-backend/internal/controller/announcement"
	"HireHub-backend/internal/controller/application"
	"HireHub-backend/internal/controller/contact"
	"HireHub-backend/internal/controller/inbox"
	"HireHub-backend/internal/controller/jobpost"
	"HireHub-backend/internal/controller/site"
	"HireHub-backend/internal/middleware"
	"HireHub-backend/internal/model"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "HireHub-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	blacklist := auth.NewInMemoryBlacklistStore()
	gAuth := auth.NewOauthLoginHandler(s.Store, s.Backend, auth.GoogleOauthConfigFromEnv(), auth.GoogleUserInfoEndpoint)
	lAuth := auth.NewLocalAuthHandler(s.Store, s.Backend)
	logout := auth.NewLogoutController(s.Store, blacklist)

	jobs := jobpost.NewJobPostController(s.Store)
	apps := application.NewApplicationController(s.Store)
	accounts := account.NewAccountController(s.Store)
	threads := inbox.NewInboxController(s.Store)
	announces := announcement.NewAnnouncementController(s.Store)
	contacts := contact.NewContactController(s.Store)
	siteState := site.NewSiteController(s.Store)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("google", gAuth.GoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)

			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.POST("register", lAuth.RegisterHandler)
		}

		// Public endpoints
		v1.GET("/jobs", jobs.GetAllJobsHandler)
		v1.GET("/jobs/:id", jobs.GetJobHandler)
		v1.POST("/contact", contacts.SubmitHandler)

		siteRoute := v1.Group("/site")
		{
			siteRoute.GET("theme", siteState.ThemeHandler)
			siteRoute.POST("theme/toggle", siteState.ToggleThemeHandler)
			siteRoute.GET("navigation", siteState.NavigationHandler)
			siteRoute.POST("navigate", siteState.NavigateHandler)
			siteRoute.POST("back", siteState.BackHandler)
			siteRoute.POST("filters", siteState.FiltersHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.Store), middleware.JwtBlacklistCheck(blacklist))

			needAuth.POST("/auth/logout", logout.LogoutHandler)

			needAuth.GET("/users/me", accounts.MeHandler)
			needAuth.PUT("/users/me", accounts.UpdateProfileHandler)
			needAuth.GET("/users/:id", accounts.GetUserHandler)
			needAuth.DELETE("/users/:id", accounts.DeleteUserHandler)

			needAuth.GET("/announcements", announces.ListHandler)

			inboxRoute := needAuth.Group("/inbox")
			{
				inboxRoute.GET("", threads.InboxHandler)
				inboxRoute.POST(":id/read", threads.MarkReadHandler)
				inboxRoute.POST(":id/replies", threads.ReplyHandler)
				inboxRoute.DELETE(":id", threads.DeleteThreadHandler)

				inboxRoute.POST("admin", middleware.CheckRole(model.RoleEmployer), threads.SendToAdminHandler)
				inboxRoute.POST("employer", middleware.CheckRole(model.RoleAdmin), threads.SendToEmployerHandler)
				inboxRoute.GET("peer", middleware.CheckRole(model.RoleEmployer, model.RoleStudent), threads.PeerInboxHandler)
				inboxRoute.POST("peer", middleware.CheckRole(model.RoleEmployer, model.RoleStudent), threads.SendPeerHandler)
				inboxRoute.POST(":id/decision", middleware.CheckRole(model.RoleEmployer), threads.DecideHandler)
			}

			needStudent := needAuth.Group("")
			{
				needStudent.Use(middleware.CheckRole(model.RoleStudent, model.RoleAdmin))
				needStudent.POST("/applications", apps.ApplyHandler)
				needStudent.GET("/applications/mine", apps.MyApplicationsHandler)
			}

			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer, model.RoleAdmin))
				needEmployer.GET("/jobs/mine", jobs.MyJobsHandler)
				needEmployer.POST("/jobs", jobs.CreateJobPostHandler)
				needEmployer.PUT("/jobs/:id", jobs.EditJobPostHandler)
				needEmployer.DELETE("/jobs/:id", jobs.DeleteJobPostHandler)
				needEmployer.GET("/jobs/:id/applications", apps.JobApplicationsHandler)
				needEmployer.PUT("/applications/:id/status", apps.UpdateStatusHandler)
			}

			needAdmin := needAuth.Group("/admin")
			{
				needAdmin.Use(middleware.CheckRole(model.RoleAdmin))
				needAdmin.GET("users", accounts.ListUsersHandler)
				needAdmin.POST("employers/:id/approve", accounts.ApproveEmployerHandler)
				needAdmin.POST("employers/:id/reject", accounts.RejectEmployerHandler)

				needAdmin.GET("announcements", announces.ListAllHandler)
				needAdmin.POST("announcements", announces.CreateHandler)
				needAdmin.PUT("announcements/:id", announces.UpdateHandler)
				needAdmin.DELETE("announcements/:id", announces.DeleteHandler)

				needAdmin.GET("contact", contacts.ListHandler)
				needAdmin.POST("contact/:id/read", contacts.MarkReadHandler)
				needAdmin.POST("contact/:id/reply", contacts.ReplyHandler)

				needAdmin.GET("last-commit", siteState.LastCommitHandler)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	if s.DB == nil {
		c.JSON(http.StatusOK, map[string]string{
			"status":  "up",
			"message": "Running without a remote store",
		})
		return
	}
	c.JSON(http.StatusOK, s.DB.Health())
}
