package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/api/handlers"
	"github.com/halcyon-rp/depthub/internal/api/middleware"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/cron"
	"github.com/halcyon-rp/depthub/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.CORSMiddleware())

	// init
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services)

	// Start background tasks
	cron.StartExpirySweep(services.Expiry)
	cron.StartCleanupTask(services.Audit)

	// setup
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.GetMe)

		users := auth.Group("/users")
		{
			users.GET("/:id", h.User.GetUserByID)
		}

		auth.GET("/principals/:identifier", h.User.ResolvePrincipal)

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.GET("/:id", h.Form.GetForm)
			forms.POST("", middleware.Admin(), h.Form.CreateForm)
			forms.PUT("/:id", middleware.Admin(), h.Form.UpdateForm)
			forms.DELETE("/:id", middleware.Admin(), h.Form.DeleteForm)
			forms.PUT("/:id/questions/order", middleware.Admin(), h.Form.ReorderQuestions)

			forms.POST("/:id/submit", h.Response.SubmitForm)
			forms.POST("/:id/draft", h.Response.SaveDraft)
		}

		responses := auth.Group("/responses")
		{
			responses.GET("/mine", h.Response.ListMine)
			responses.GET("/pending-review", h.Response.ListPendingReview)
			responses.GET("/pending-approval", h.Response.ListPendingApproval)
			responses.POST("/precheck", h.Response.Precheck)
			responses.GET("/:id", h.Response.GetResponse)
			responses.POST("/:id/review", h.Response.Review)
			responses.POST("/:id/approve", h.Response.Approve)
		}

		members := auth.Group("/members")
		{
			members.GET("/:id", h.Member.GetMember)
			members.GET("/:id/actions", h.Member.ListActiveActions)
			members.GET("/:id/shifts", h.Shift.ListByMember)
			members.GET("/:id/shift-conflicts", h.Shift.CheckConflicts)
			members.POST("/actions", middleware.Admin(), h.Member.IssueAction)
			members.POST("/:id/review-actions", middleware.Admin(), h.Member.ApplyReviewActions)
		}

		departments := auth.Group("/departments")
		{
			departments.GET("/:id/members", h.Member.ListByDepartment)
			departments.GET("/:id/shifts", h.Shift.ListByDepartment)
		}

		shifts := auth.Group("/shifts")
		{
			shifts.POST("", h.Shift.CreateShift)
			shifts.POST("/:id/cancel", h.Shift.CancelShift)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
