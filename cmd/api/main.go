package main

import (
	"log"
	"os"

	_ "schoolsite/api/swagger" // swagger docs
	"schoolsite/internal/database"
	"schoolsite/internal/handler"
	"schoolsite/internal/identity"
	"schoolsite/internal/mailer"
	"schoolsite/internal/middleware"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"
	"schoolsite/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           School Website API
// @version         1.0
// @description     Backend for the school website: public content, admin access requests and the admin panel.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "schoolsite"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// WebSocket hub for the admin dashboard live feed
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Repositories
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	requestRepo := repository.NewAdminRequestRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	personnelRepo := repository.NewPersonnelRepository(db)
	programRepo := repository.NewProgramRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	siteContentRepo := repository.NewSiteContentRepository(db)

	// Identity provider and outbound mail
	provider := identity.NewLocalProvider(userRepo)
	var mail mailer.Mailer
	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		mail = mailer.NewSendgridMailer(key, os.Getenv("MAIL_FROM_NAME"), os.Getenv("MAIL_FROM_ADDRESS"))
	} else {
		log.Println("SENDGRID_API_KEY not set; outbound mail goes to the log")
		mail = mailer.NewConsoleMailer()
	}

	// Services
	requestService := service.NewAdminRequestService(requestRepo, auditRepo, txManager, provider, mail, wsHub)
	authService := service.NewAuthService(db, provider, roleRepo)
	roleService := service.NewRoleService(roleRepo, userRepo, auditRepo, txManager, provider)
	announcementService := service.NewAnnouncementService(announcementRepo, auditRepo, txManager, wsHub)
	personnelService := service.NewPersonnelService(personnelRepo, auditRepo, txManager, wsHub)
	programService := service.NewProgramService(programRepo, auditRepo, txManager, wsHub)
	scholarshipService := service.NewScholarshipService(scholarshipRepo, auditRepo, txManager, wsHub)
	organizationService := service.NewOrganizationService(organizationRepo, auditRepo, txManager, wsHub)
	siteContentService := service.NewSiteContentService(siteContentRepo, auditRepo, txManager, wsHub)
	auditService := service.NewAuditService(auditRepo)
	statsService := service.NewStatsService(requestRepo, announcementRepo, personnelRepo, programRepo, scholarshipRepo, organizationRepo)

	// Handlers
	requestHandler := handler.NewRequestHandler(requestService)
	authHandler := handler.NewAuthHandler(authService)
	roleHandler := handler.NewRoleHandler(roleService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	personnelHandler := handler.NewPersonnelHandler(personnelService)
	programHandler := handler.NewProgramHandler(programService)
	scholarshipHandler := handler.NewScholarshipHandler(scholarshipService)
	organizationHandler := handler.NewOrganizationHandler(organizationService)
	siteContentHandler := handler.NewSiteContentHandler(siteContentService)
	auditHandler := handler.NewAuditHandler(auditService)
	statsHandler := handler.NewStatsHandler(statsService)

	// The admin gate resolves roles against the database with a short cache
	middleware.InitAdminGate(roleRepo)

	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret(), middleware.IsAdmin)
	})

	// API routing
	root := router.Group("")
	requestHandler.RegisterRoutes(root)
	authHandler.RegisterRoutes(root)
	roleHandler.RegisterRoutes(root)
	announcementHandler.RegisterRoutes(root)
	personnelHandler.RegisterRoutes(root)
	programHandler.RegisterRoutes(root)
	scholarshipHandler.RegisterRoutes(root)
	organizationHandler.RegisterRoutes(root)
	siteContentHandler.RegisterRoutes(root)
	auditHandler.RegisterRoutes(root)
	statsHandler.RegisterRoutes(root)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
