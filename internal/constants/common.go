package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Payment providers
	StripeProvider = "stripe"

	// User roles
	AdminRole    = "admin"
	CustomerRole = "customer"

	// Notification channels
	EmailChannel    = "email"
	WhatsAppChannel = "whatsapp"

	// Currencies
	SARCurrency = "SAR"
	USDCurrency = "USD"
)
