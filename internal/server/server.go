package server

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	awsclient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/aws"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/loyalty"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/media"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/payments"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/promo"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/supplier"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/whatsapp"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/handlers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/middleware"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/ws"
)

// Handler Definitions
var (
	healthHandler      *handlers.HealthHandler
	rateHandler        *handlers.RateHandler
	bookingHandler     *handlers.BookingHandler
	promoHandler       *handlers.PromoHandler
	loyaltyHandler     *handlers.LoyaltyHandler
	currencyHandler    *handlers.CurrencyHandler
	reservationHandler *handlers.ReservationHandler
	clientHandler      *handlers.ClientHandler
	invoiceHandler     *handlers.InvoiceHandler
	analyticsHandler   *handlers.AnalyticsHandler
	inboxHandler       *handlers.InboxHandler
	blogHandler        *handlers.BlogHandler
	webhookHandler     *handlers.WebhookHandler

	// Clients
	authClient *auth.AuthClient

	// inboxHub fans inbox events out to connected agent dashboards.
	inboxHub *ws.Hub
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal // Default to local if not set
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Auth Configuration ---
	authJWKSEndpoint, err := secretsClient.GetSecretString(ctx, "AUTH_JWKS_ENDPOINT_ARN", "AUTH_JWKS_ENDPOINT")
	if err != nil || authJWKSEndpoint == "" {
		logger.Fatal("Failed to get Auth JWKS Endpoint", zap.Error(err))
	}

	authIssuer, err := secretsClient.GetSecretString(ctx, "AUTH_ISSUER_ARN", "AUTH_ISSUER")
	if err != nil || authIssuer == "" {
		logger.Fatal("Failed to get Auth Issuer", zap.Error(err))
	}

	authAudience, err := secretsClient.GetSecretString(ctx, "AUTH_AUDIENCE_ARN", "AUTH_AUDIENCE")
	if err != nil || authAudience == "" {
		logger.Fatal("Failed to get Auth Audience", zap.Error(err))
	}

	// Set environment variables for AuthClient
	os.Setenv("AUTH_JWKS_ENDPOINT", authJWKSEndpoint)
	os.Setenv("AUTH_ISSUER", authIssuer)
	os.Setenv("AUTH_AUDIENCE", authAudience)

	// --- Auth Client ---
	authClient = auth.NewAuthClient()

	// --- Rate Supplier Client ---
	supplierBaseURL := os.Getenv("SUPPLIER_BASE_URL")
	if supplierBaseURL == "" {
		logger.Fatal("SUPPLIER_BASE_URL environment variable is required")
	}
	supplierAPIKey, err := secretsClient.GetSecretString(ctx, "SUPPLIER_API_KEY_ARN", "SUPPLIER_API_KEY")
	if err != nil || supplierAPIKey == "" {
		logger.Fatal("Failed to get Supplier API Key", zap.Error(err))
	}
	supplierClient := supplier.NewSupplierClient(supplier.SupplierConfig{
		BaseURL: supplierBaseURL,
		APIKey:  supplierAPIKey,
	})

	// --- CRS Client ---
	crsBaseURL := os.Getenv("CRS_BASE_URL")
	if crsBaseURL == "" {
		logger.Fatal("CRS_BASE_URL environment variable is required")
	}
	crsAPIKey, err := secretsClient.GetSecretString(ctx, "CRS_API_KEY_ARN", "CRS_API_KEY")
	if err != nil || crsAPIKey == "" {
		logger.Fatal("Failed to get CRS API Key", zap.Error(err))
	}
	crsClient := crs.NewCRSClient(crs.CRSConfig{
		BaseURL: crsBaseURL,
		APIKey:  crsAPIKey,
	})

	// --- Promo Engine Client ---
	promoBaseURL := os.Getenv("PROMO_BASE_URL")
	if promoBaseURL == "" {
		logger.Fatal("PROMO_BASE_URL environment variable is required")
	}
	promoAPIKey, err := secretsClient.GetSecretString(ctx, "PROMO_API_KEY_ARN", "PROMO_API_KEY")
	if err != nil || promoAPIKey == "" {
		logger.Fatal("Failed to get Promo API Key", zap.Error(err))
	}
	promoClient := promo.NewPromoClient(promo.PromoConfig{
		BaseURL: promoBaseURL,
		APIKey:  promoAPIKey,
	})

	// --- Loyalty Program Client ---
	loyaltyBaseURL := os.Getenv("LOYALTY_BASE_URL")
	if loyaltyBaseURL == "" {
		logger.Fatal("LOYALTY_BASE_URL environment variable is required")
	}
	loyaltyAPIKey, err := secretsClient.GetSecretString(ctx, "LOYALTY_API_KEY_ARN", "LOYALTY_API_KEY")
	if err != nil || loyaltyAPIKey == "" {
		logger.Fatal("Failed to get Loyalty API Key", zap.Error(err))
	}
	loyaltyClient := loyalty.NewLoyaltyClient(loyalty.LoyaltyConfig{
		BaseURL: loyaltyBaseURL,
		APIKey:  loyaltyAPIKey,
	})

	// --- Payment Provider Client ---
	paymentsBaseURL := os.Getenv("PAYMENTS_BASE_URL")
	if paymentsBaseURL == "" {
		logger.Fatal("PAYMENTS_BASE_URL environment variable is required")
	}
	paymentsAPIKey, err := secretsClient.GetSecretString(ctx, "PAYMENTS_API_KEY_ARN", "PAYMENTS_API_KEY")
	if err != nil || paymentsAPIKey == "" {
		logger.Fatal("Failed to get Payments API Key", zap.Error(err))
	}
	paymentsClient := payments.NewPaymentsClient(payments.PaymentsConfig{
		BaseURL: paymentsBaseURL,
		APIKey:  paymentsAPIKey,
	})

	// --- Stripe Webhook Secret ---
	stripeWebhookSecret, err := secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
	if err != nil || stripeWebhookSecret == "" {
		logger.Fatal("Failed to get Stripe Webhook Secret", zap.Error(err))
	}

	// --- WhatsApp Gateway Client ---
	whatsappBaseURL := os.Getenv("WHATSAPP_BASE_URL")
	if whatsappBaseURL == "" {
		logger.Fatal("WHATSAPP_BASE_URL environment variable is required")
	}
	whatsappSenderID := os.Getenv("WHATSAPP_SENDER_ID")
	if whatsappSenderID == "" {
		logger.Fatal("WHATSAPP_SENDER_ID environment variable is required")
	}
	var whatsappCreds whatsapp.WhatsAppConfig
	err = secretsClient.GetSecretJSON(ctx, "WHATSAPP_CREDENTIALS_ARN", "WHATSAPP_CREDENTIALS", &whatsappCreds)
	if err != nil || whatsappCreds.AccountSID == "" || whatsappCreds.AuthToken == "" {
		logger.Fatal("Failed to get WhatsApp gateway credentials", zap.Error(err))
	}
	whatsappCreds.BaseURL = whatsappBaseURL
	whatsappCreds.SenderID = whatsappSenderID
	whatsappClient := whatsapp.NewWhatsAppClient(whatsappCreds)

	// --- WhatsApp Inbound Webhook Token ---
	whatsappWebhookToken, err := secretsClient.GetSecretString(ctx, "WHATSAPP_WEBHOOK_TOKEN_ARN", "WHATSAPP_WEBHOOK_TOKEN")
	if err != nil || whatsappWebhookToken == "" {
		logger.Log.Warn("Failed to get WhatsApp Webhook Token. Inbound message deliveries will be rejected.", zap.Error(err))
		whatsappWebhookToken = ""
	}

	// --- Media (Cloudinary) Client ---
	cloudinaryCloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudinaryCloudName == "" {
		logger.Fatal("CLOUDINARY_CLOUD_NAME environment variable is required")
	}
	cloudinaryAPIKey := os.Getenv("CLOUDINARY_API_KEY")
	if cloudinaryAPIKey == "" {
		logger.Fatal("CLOUDINARY_API_KEY environment variable is required")
	}
	cloudinaryAPISecret, err := secretsClient.GetSecretString(ctx, "CLOUDINARY_API_SECRET_ARN", "CLOUDINARY_API_SECRET")
	if err != nil || cloudinaryAPISecret == "" {
		logger.Fatal("Failed to get Cloudinary API Secret", zap.Error(err))
	}
	mediaClient, err := media.NewMediaClient(media.MediaConfig{
		CloudName: cloudinaryCloudName,
		APIKey:    cloudinaryAPIKey,
		APISecret: cloudinaryAPISecret,
	})
	if err != nil {
		logger.Fatal("Unable to create media client", zap.Error(err))
	}

	// --- Resend API Key ---
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Log.Warn("Failed to get Resend API Key. Email functionality will be disabled.", zap.Error(err))
		resendAPIKey = "" // Allow initialization but email sending will fail
	}

	// Get additional configurations
	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "bookings@gaithtours.com"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Gaith Tours"
	}

	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName)

	// --- Notification Queue ---
	// Deployed stages publish notification jobs to SQS for the notifier
	// worker; without a queue URL delivery happens inline.
	var notificationQueue interfaces.NotificationQueue
	queueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL")
	if queueURL != "" {
		queuePublisher, err := awsclient.NewQueuePublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create notification queue publisher", zap.Error(err))
		}
		notificationQueue = queuePublisher
	} else {
		logger.Info("NOTIFICATIONS_QUEUE_URL not set, delivering notifications inline")
	}

	notificationService := services.NewNotificationService(emailService, whatsappClient, notificationQueue)

	// --- Inbox Event Hub ---
	inboxHub = ws.NewHub()

	// --- Booking Checkout URLs ---
	successURL := os.Getenv("CHECKOUT_SUCCESS_URL")
	if successURL == "" {
		successURL = "https://gaithtours.com/booking/success"
	}
	cancelURL := os.Getenv("CHECKOUT_CANCEL_URL")
	if cancelURL == "" {
		cancelURL = "https://gaithtours.com/booking/cancelled"
	}

	// --- Services ---
	pricingService := services.NewPricingService()
	rateService := services.NewRateService(supplierClient)
	bookingService := services.NewBookingService(
		pricingService,
		promoClient,
		loyaltyClient,
		supplierClient,
		paymentsClient,
		crsClient,
		notificationService,
		services.BookingConfig{
			SuccessURL: successURL,
			CancelURL:  cancelURL,
		},
	)
	promoService := services.NewPromoService(promoClient)
	loyaltyService := services.NewLoyaltyService(loyaltyClient)
	currencyService := services.NewCurrencyService(os.Getenv("SUPPORTED_CURRENCIES"))
	reservationService := services.NewReservationService(crsClient)
	clientService := services.NewClientService(crsClient)
	invoiceService := services.NewInvoiceService(crsClient, paymentsClient, notificationService)
	analyticsService := services.NewAnalyticsService(crsClient)
	inboxService := services.NewInboxService(whatsappClient, inboxHub)
	blogService := services.NewBlogService(crsClient, mediaClient)
	paymentWebhookService := services.NewPaymentWebhookService(crsClient, notificationService, inboxHub)

	// --- Handlers ---
	healthHandler = handlers.NewHealthHandler()
	rateHandler = handlers.NewRateHandler(rateService, logger.Log)
	bookingHandler = handlers.NewBookingHandler(bookingService, logger.Log)
	promoHandler = handlers.NewPromoHandler(promoService, logger.Log)
	loyaltyHandler = handlers.NewLoyaltyHandler(loyaltyService, logger.Log)
	currencyHandler = handlers.NewCurrencyHandler(currencyService, logger.Log)
	reservationHandler = handlers.NewReservationHandler(reservationService, logger.Log)
	clientHandler = handlers.NewClientHandler(clientService, logger.Log)
	invoiceHandler = handlers.NewInvoiceHandler(invoiceService, logger.Log)
	analyticsHandler = handlers.NewAnalyticsHandler(analyticsService, logger.Log)
	inboxHandler = handlers.NewInboxHandler(inboxService, logger.Log)
	blogHandler = handlers.NewBlogHandler(blogService, logger.Log)
	webhookHandler = handlers.NewWebhookHandler(paymentWebhookService, inboxService, stripeWebhookSecret, whatsappWebhookToken, logger.Log)
}

func InitializeRoutes(router *gin.Engine) {
	// Logger is initialized in InitializeHandlers

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	// This provides a default rate limit for all endpoints
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Add enhanced logging in development mode
	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))

	// Add basic request logging for production
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/currencies", currencyHandler.ListCurrencies)

		// Public blog, read-heavy
		blog := v1.Group("/blog", middleware.RelaxedRateLimiter.Middleware())
		{
			blog.GET("/posts", blogHandler.ListPublishedPosts)
			blog.GET("/posts/:slug", blogHandler.GetPostBySlug)
		}

		// Rate search is open to visitors; searches fan out to the supplier
		rates := v1.Group("/rates", middleware.RelaxedRateLimiter.Middleware())
		{
			rates.POST("/search", middleware.ValidateInput(middleware.RateSearchValidation), rateHandler.SearchRates)
			rates.POST("/refresh", middleware.ValidateInput(middleware.RefreshSelectionsValidation), rateHandler.RefreshSelections)
		}

		// Booking flow. Quote is pure computation; submission accepts
		// guests, so the token is optional rather than required.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("/quote", middleware.ValidateInput(middleware.QuoteValidation), bookingHandler.Quote)
			bookings.POST("", authClient.OptionalToken(), middleware.StrictRateLimiter.Middleware(),
				middleware.ValidateInput(middleware.SubmitBookingValidation), bookingHandler.SubmitBooking)
		}

		// Promo validation counts against per-code usage caps upstream
		v1.POST("/promos/validate", authClient.OptionalToken(), middleware.StrictRateLimiter.Middleware(),
			middleware.ValidateInput(middleware.ValidatePromoValidation), promoHandler.ValidatePromo)

		// Loyalty routes (authentication required)
		loyaltyRoutes := v1.Group("/loyalty", authClient.EnsureValidToken())
		{
			loyaltyRoutes.GET("/balance", loyaltyHandler.GetBalance)
			loyaltyRoutes.POST("/preview", middleware.ValidateInput(middleware.LoyaltyPreviewValidation), loyaltyHandler.PreviewRedemption)
		}

		// Inbox event feed. The websocket dial carries its token in the
		// query string, so it sits outside the header-auth admin group and
		// authenticates during the upgrade.
		v1.GET("/admin/inbox/ws", ws.UpgradeInboxWS(authClient, inboxHub))

		// Admin-only routes (back-office dashboard)
		admin := v1.Group("/admin", authClient.EnsureValidToken(), authClient.RequireRoles(constants.AdminRole))
		{
			// Reservation management
			reservations := admin.Group("/reservations")
			{
				reservations.GET("", middleware.ValidateQueryParams(middleware.ListReservationsQueryValidation), reservationHandler.ListReservations)
				reservations.GET("/:reservation_id", reservationHandler.GetReservation)
				reservations.POST("/:reservation_id/approve", reservationHandler.ApproveReservation)
				reservations.POST("/:reservation_id/cancel", middleware.ValidateInput(middleware.CancelReservationValidation), reservationHandler.CancelReservation)
				reservations.PATCH("/:reservation_id", middleware.ValidateInput(middleware.AmendReservationValidation), reservationHandler.AmendReservation)
			}

			// Client management
			clients := admin.Group("/clients")
			{
				clients.GET("", clientHandler.ListClients)
				clients.GET("/:client_id", clientHandler.GetClient)
				clients.PATCH("/:client_id", middleware.ValidateInput(middleware.UpdateClientValidation), clientHandler.UpdateClient)
			}

			// Invoice management
			invoices := admin.Group("/invoices")
			{
				invoices.GET("", invoiceHandler.ListInvoices)
				invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
				invoices.POST("/:invoice_id/payment-link", invoiceHandler.CreatePaymentLink)
				invoices.POST("/:invoice_id/send", middleware.ValidateInput(middleware.SendInvoiceValidation), invoiceHandler.SendInvoice)
				invoices.POST("/:invoice_id/mark-paid", invoiceHandler.MarkInvoicePaid)
			}

			// Dashboard analytics
			admin.GET("/analytics/dashboard", analyticsHandler.GetDashboardMetrics)

			// Promo code management
			promos := admin.Group("/promos")
			{
				promos.GET("", promoHandler.ListPromos)
				promos.POST("", middleware.ValidateInput(middleware.CreatePromoValidation), promoHandler.CreatePromo)
				promos.PATCH("/:promo_id", promoHandler.UpdatePromo)
				promos.DELETE("/:promo_id", promoHandler.DeletePromo)
			}

			// WhatsApp inbox
			inbox := admin.Group("/inbox")
			{
				inbox.GET("/conversations", inboxHandler.ListConversations)
				inbox.GET("/conversations/:conversation_id/messages", inboxHandler.ListMessages)
				inbox.POST("/conversations/:conversation_id/messages", middleware.ValidateInput(middleware.SendMessageValidation), inboxHandler.SendMessage)
				inbox.POST("/conversations/:conversation_id/read", inboxHandler.MarkRead)
			}

			// Blog CMS
			adminBlog := admin.Group("/blog")
			{
				adminBlog.GET("/posts", blogHandler.ListAllPosts)
				adminBlog.POST("/posts", middleware.ValidateInput(middleware.CreateBlogPostValidation), blogHandler.CreatePost)
				adminBlog.PATCH("/posts/:post_id", blogHandler.UpdatePost)
				adminBlog.DELETE("/posts/:post_id", blogHandler.DeletePost)
				adminBlog.POST("/images", blogHandler.UploadImage)
			}
		}

		// Provider webhooks authenticate by signature or shared token, not JWT
		webhooks := v1.Group("/webhooks", middleware.StrictRateLimiter.Middleware())
		{
			webhooks.POST("/payments/stripe", webhookHandler.HandleStripeWebhook)
			webhooks.POST("/whatsapp/inbound", webhookHandler.HandleWhatsAppInbound)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	} else {
		// Default exposed headers including rate limit headers
		corsConfig.ExposeHeaders = []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"Retry-After",
			"X-Correlation-ID",
		}
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
