package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/Shoaib232002/Alumni-Project/internal/alumni"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
	"github.com/Shoaib232002/Alumni-Project/internal/college"
	"github.com/Shoaib232002/Alumni-Project/internal/config"
	"github.com/Shoaib232002/Alumni-Project/internal/feedback"
	"github.com/Shoaib232002/Alumni-Project/internal/fundraising"
	"github.com/Shoaib232002/Alumni-Project/internal/notification"
	"github.com/Shoaib232002/Alumni-Project/internal/scraper"
	"github.com/Shoaib232002/Alumni-Project/pkg/middleware"
	"github.com/Shoaib232002/Alumni-Project/pkg/validation"
)

// Module assembles the whole application: config, storage, services,
// handlers and the HTTP server.
var Module = fx.Module("server",
	fx.Provide(
		config.NewConfig,
		config.NewMongoDBClient,
		config.NewEmailService,
		NewEchoServer,

		// Repositories and their store interfaces.
		auth.NewUserRepository,
		func(r *auth.UserRepository) auth.UserStore { return r },
		notification.NewNotificationRepository,
		func(r *notification.NotificationRepository) notification.NotificationStore { return r },
		alumni.NewAlumniRepository,
		func(r *alumni.AlumniRepository) alumni.AlumniStore { return r },
		func(r *alumni.AlumniRepository) scraper.AlumniDirectory { return r },
		fundraising.NewFundraisingRepository,
		func(r *fundraising.FundraisingRepository) fundraising.Store { return r },
		feedback.NewFeedbackRepository,
		func(r *feedback.FeedbackRepository) feedback.FeedbackStore { return r },
		college.NewCollegeInfoRepository,
		func(r *college.CollegeInfoRepository) college.CollegeInfoStore { return r },

		// Services. The notification service fans out to every package that
		// emits events.
		notification.NewNotificationService,
		func(s *notification.NotificationService) alumni.Notifier { return s },
		func(s *notification.NotificationService) fundraising.Notifier { return s },
		func(s *notification.NotificationService) feedback.Notifier { return s },
		func(s *notification.NotificationService) scraper.Notifier { return s },
		auth.NewUserService,
		alumni.NewAlumniService,
		fundraising.NewFundraisingService,
		fundraising.NewCampaignScheduler,
		feedback.NewFeedbackService,
		college.NewCollegeInfoService,
		scraper.NewGenerator,
		scraper.NewScraperService,

		// Handlers.
		auth.NewAuthHandler,
		alumni.NewAlumniHandler,
		fundraising.NewFundraisingHandler,
		feedback.NewFeedbackHandler,
		notification.NewNotificationHandler,
		college.NewCollegeInfoHandler,
		scraper.NewScraperHandler,
	),
	fx.Invoke(func(cfg *config.Config) { auth.InitJWTKey(cfg.JWTSecret) }),
	fx.Invoke(func(s *fundraising.CampaignScheduler, lc fx.Lifecycle) { s.StartScheduler(lc) }),
	fx.Invoke(RegisterRoutes),
)

func NewEchoServer(lc fx.Lifecycle, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewRequestValidator()
	middleware.SetupMiddleware(e, cfg.AllowOrigin)

	addr := fmt.Sprintf(":%d", cfg.Port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Printf("Server running on http://localhost%s", addr)
			go func() {
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// RegisterRoutes lays out the API surface. Public reads and donor-facing
// writes are open; everything else goes through the JWT gate and the RBAC
// policy table.
func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	alumniHandler *alumni.AlumniHandler,
	fundraisingHandler *fundraising.FundraisingHandler,
	feedbackHandler *feedback.FeedbackHandler,
	notificationHandler *notification.NotificationHandler,
	collegeHandler *college.CollegeInfoHandler,
	scraperHandler *scraper.ScraperHandler,
) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "message": "Server is running"})
	})

	// Public surface.
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/alumni", alumniHandler.List)
	api.GET("/alumni/batch/:batch", alumniHandler.ListByBatch)
	api.GET("/alumni/:id", alumniHandler.Get)

	api.GET("/feedback", feedbackHandler.List)
	api.GET("/feedback/:id", feedbackHandler.Get)
	api.POST("/feedback", feedbackHandler.Create)

	api.GET("/fundraising", fundraisingHandler.ListCampaigns)
	api.GET("/fundraising/active", fundraisingHandler.ListActiveCampaigns)
	api.GET("/fundraising/:id", fundraisingHandler.GetCampaign)

	api.POST("/donation", fundraisingHandler.CreateDonation)
	api.GET("/donation/campaign/:campaignId", fundraisingHandler.ListDonationsByCampaign)

	api.GET("/college-info", collegeHandler.Get)

	// Authenticated surface behind the policy table.
	protected := api.Group("", middleware.JWTMiddleware, middleware.RBACMiddleware)

	protected.GET("/auth/me", authHandler.Me)

	protected.POST("/alumni", alumniHandler.Create)
	protected.PUT("/alumni/:id", alumniHandler.Update)
	protected.DELETE("/alumni/:id", alumniHandler.Delete)
	protected.PATCH("/alumni/:id/verify", alumniHandler.Verify)

	protected.POST("/fundraising", fundraisingHandler.CreateCampaign)
	protected.PUT("/fundraising/:id", fundraisingHandler.UpdateCampaign)
	protected.DELETE("/fundraising/:id", fundraisingHandler.DeleteCampaign)
	protected.PATCH("/fundraising/:id/toggle-status", fundraisingHandler.ToggleStatus)

	protected.GET("/donation/alumni/:alumniId", fundraisingHandler.ListDonationsByAlumni)
	protected.GET("/donation/stats", fundraisingHandler.Stats)

	protected.PATCH("/feedback/:id/approve", feedbackHandler.Approve)
	protected.DELETE("/feedback/:id", feedbackHandler.Delete)

	protected.GET("/notification", notificationHandler.List)
	protected.PATCH("/notification/mark-all-read", notificationHandler.MarkAllRead)
	protected.PATCH("/notification/:id/read", notificationHandler.MarkRead)

	protected.PUT("/college-info", collegeHandler.Upsert)

	protected.POST("/scraper/scrape", scraperHandler.Scrape)
	protected.POST("/scraper/add-scraped-profile", scraperHandler.AddScrapedProfile)
}
