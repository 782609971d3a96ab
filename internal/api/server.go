package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ticketlot/admin-gateway/docs"
	v1 "github.com/ticketlot/admin-gateway/internal/api/handler/v1"
	"github.com/ticketlot/admin-gateway/internal/api/middleware"
	"github.com/ticketlot/admin-gateway/internal/config"
	"github.com/ticketlot/admin-gateway/internal/service"
	"github.com/ticketlot/admin-gateway/internal/session"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	draw *service.DrawEngine
}

func NewServer(conf *config.AppConfig, sess *session.Session, client *upstream.Client) *Server {
	gin.SetMode(conf.API.GinMode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		draw:   service.NewDrawEngine(client, service.DefaultDrawTimings()),
	}

	s.MountMiddlewares()

	authHandler := v1.NewAuthHandler(sess)
	dashboardHandler := v1.NewDashboardHandler(service.NewDashboardService(client))
	userHandler := v1.NewUserHandler(service.NewUserService(client))
	ticketHandler := v1.NewTicketHandler(service.NewTicketService(client))
	paymentMethodHandler := v1.NewPaymentMethodHandler(service.NewPaymentMethodService(client))
	purchaseHandler := v1.NewPurchaseHandler(service.NewPurchaseService(client))
	winnerHandler := v1.NewWinnerHandler(service.NewWinnerService(client), service.NewTicketService(client), s.draw)
	settingsHandler := v1.NewSettingsHandler(service.NewSettingsService(client))

	s.MountHandlers(sess,
		authHandler, dashboardHandler, userHandler, ticketHandler,
		paymentMethodHandler, purchaseHandler, winnerHandler, settingsHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	sess *session.Session,
	authHandler *v1.AuthHandler,
	dashboardHandler *v1.DashboardHandler,
	userHandler *v1.UserHandler,
	ticketHandler *v1.TicketHandler,
	paymentMethodHandler *v1.PaymentMethodHandler,
	purchaseHandler *v1.PurchaseHandler,
	winnerHandler *v1.WinnerHandler,
	settingsHandler *v1.SettingsHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/logout", authHandler.HandleLogout)
		auth.GET("/auth/session", authHandler.HandleSession)
	}

	pages := s.Router.Group(basePath, middleware.RequireSession(sess))
	{
		pages.GET("/dashboard/overview", dashboardHandler.HandleOverview)

		pages.GET("/users", userHandler.HandleListUsers)
		pages.GET("/users/:userID", userHandler.HandleGetUser)
		pages.PUT("/users/:userID", userHandler.HandleUpdateUser)
		pages.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		pages.GET("/tickets", ticketHandler.HandleListTickets)
		pages.GET("/tickets/:ticketID", ticketHandler.HandleGetTicket)
		pages.POST("/tickets", ticketHandler.HandleCreateTicket)
		pages.PUT("/tickets/:ticketID", ticketHandler.HandleUpdateTicket)
		pages.DELETE("/tickets/:ticketID", ticketHandler.HandleDeleteTicket)

		pages.GET("/payment-methods", paymentMethodHandler.HandleListPaymentMethods)
		pages.GET("/payment-methods/:methodID", paymentMethodHandler.HandleGetPaymentMethod)
		pages.POST("/payment-methods", paymentMethodHandler.HandleCreatePaymentMethod)
		pages.PUT("/payment-methods/:methodID", paymentMethodHandler.HandleUpdatePaymentMethod)
		pages.DELETE("/payment-methods/:methodID", paymentMethodHandler.HandleDeletePaymentMethod)

		pages.GET("/ticket-purchases", purchaseHandler.HandleListPurchases)
		pages.GET("/ticket-purchases/:purchaseID", purchaseHandler.HandleGetPurchase)
		pages.PUT("/ticket-purchases/:purchaseID/status", purchaseHandler.HandleReviewPurchase)

		pages.GET("/winners", winnerHandler.HandleListWinners)
		pages.POST("/winners/draw", winnerHandler.HandleStartDraw)
		pages.GET("/winners/draw", winnerHandler.HandleDrawStatus)

		pages.GET("/settings", settingsHandler.HandleGetSettings)
		pages.PUT("/settings", settingsHandler.HandleUpdateSettings)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Lottery Admin Gateway API"
	docs.SwaggerInfo.Description = "Staff-facing gateway in front of the lottery platform API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// Close stops the draw engine so no animation task outlives the server.
func (s *Server) Close() {
	s.draw.Close()
}
