package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/cache"
	"erp-reporting-backend/internal/config"
	handler "erp-reporting-backend/internal/handlers"
	"erp-reporting-backend/internal/models"
	"erp-reporting-backend/internal/repository"
	"erp-reporting-backend/internal/services/aging"
	"erp-reporting-backend/internal/services/balances"
	"erp-reporting-backend/internal/services/dashboard"
	"erp-reporting-backend/internal/services/notify"
	"erp-reporting-backend/internal/tenant"
)

func RegisterRoutes(r *gin.Engine, cfg config.Config, authDB *gorm.DB) {
	userRepo := repository.NewUserRepository(authDB)
	sessions := auth.NewSessions(cfg.SessionSecret)

	pool := tenant.NewPool(cfg)
	resolver := tenant.NewResolver(userRepo, pool)

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	balancesService := balances.NewService()
	agingService := aging.NewService(cfg.CurrencyRateDivides)
	dashboardService := dashboard.NewService(redisCache)
	dispatcher := notify.NewDispatcher(notify.NewSMSSender(cfg), notify.NewWhatsAppSender(cfg))

	authHandler := handler.NewAuthHandler(userRepo, sessions)
	usersHandler := handler.NewUsersHandler(userRepo)
	customersHandler := handler.NewCustomersHandler(resolver, balancesService)
	dueInvoicesHandler := handler.NewDueInvoicesHandler(resolver, agingService, redisCache)
	balancesHandler := handler.NewBalancesHandler(resolver, balancesService)
	dashboardHandler := handler.NewDashboardHandler(resolver, dashboardService)
	invoiceDetailsHandler := handler.NewInvoiceDetailsHandler(resolver)
	remindersHandler := handler.NewRemindersHandler(resolver, dispatcher)
	countriesHandler := handler.NewCountriesHandler()

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Registration helpers, no session required
	api.GET("/countries", countriesHandler.List)
	api.GET("/default-country", countriesHandler.DefaultCountry)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/logout", authHandler.Logout)
	authGroup.GET("/current", auth.RequireAuth(sessions, userRepo), authHandler.Current)
	authGroup.GET("/user/:companyId", auth.RequireAuth(sessions, userRepo), authHandler.DatabaseByCompany)

	// Everything below needs a session; tenant data additionally needs an
	// unexpired account.
	authed := api.Group("")
	authed.Use(auth.RequireAuth(sessions, userRepo))

	manageUsers := authed.Group("/manage_users")
	manageUsers.Use(auth.RequireRoles(models.RoleAdmin, models.RoleSupervisor, models.RoleBusinessOwner))
	manageUsers.GET("", usersHandler.List)
	manageUsers.PUT("/:id", usersHandler.Update)
	manageUsers.PUT("/:id/password", usersHandler.ChangePassword)
	manageUsers.DELETE("/:id", auth.RequireRoles(models.RoleAdmin), usersHandler.Delete)

	company := authed.Group("/company")
	company.Use(auth.RequireRoles(models.RoleBusinessOwner))
	company.GET("/employees", usersHandler.Employees)
	company.POST("/employees", usersHandler.AddEmployee)

	tenantData := authed.Group("")
	tenantData.Use(auth.CheckAccountExpiration())

	customers := tenantData.Group("/customers")
	customers.GET("", customersHandler.BalanceReport)
	customers.GET("/:id", customersHandler.ByID)
	customers.GET("/summary/:p_acc_id", customersHandler.Summary)

	dueInvoices := tenantData.Group("/due_invoices")
	dueInvoices.GET("", dueInvoicesHandler.List)
	dueInvoices.GET("/customer/:p_acc_id", dueInvoicesHandler.ByAccount)

	tenantData.GET("/invoice_details/:id", invoiceDetailsHandler.Get)

	balance := tenantData.Group("/balance")
	balance.GET("", balancesHandler.Query)
	balance.POST("/initialize", balancesHandler.Initialize)
	balance.POST("/update", balancesHandler.Update)

	// Dashboard
	tenantData.GET("/invoice-data", dashboardHandler.InvoiceData)
	tenantData.GET("/summary-data", dashboardHandler.SummaryData)
	tenantData.GET("/top-users-month", dashboardHandler.TopUsers)
	tenantData.GET("/top-agents-month", dashboardHandler.TopAgents)
	tenantData.GET("/top-products-month", dashboardHandler.TopProducts)

	// Reminders
	tenantData.POST("/sendReminder", remindersHandler.SendSMS)
	tenantData.POST("/sendWhatsAppReminder", remindersHandler.SendWhatsApp)
}
