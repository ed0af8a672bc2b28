package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string `mapstructure:"FRONTEND_BASE_URL"`

	// Google API access
	GoogleCredentialsJSON string `mapstructure:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// Spreadsheet wiring
	MainSpreadsheetID string `mapstructure:"MAIN_SPREADSHEET_ID"`
	DataSpreadsheetID string `mapstructure:"DATA_SPREADSHEET_ID"`
	PdfFolderID       string `mapstructure:"PDF_FOLDER_ID"`
	ScriptID          string `mapstructure:"SCRIPT_ID"`
	DocumentLabel     string `mapstructure:"DOCUMENT_LABEL"`

	// Workflow tuning
	LockWaitDuration time.Duration

	// Rate limiting for the workflow entry point
	WorkflowRateLimit string `mapstructure:"WORKFLOW_RATE_LIMIT"`

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "docuflow")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("MAIN_SPREADSHEET_ID", "")
	viper.SetDefault("DATA_SPREADSHEET_ID", "")
	viper.SetDefault("PDF_FOLDER_ID", "")
	viper.SetDefault("SCRIPT_ID", "")
	viper.SetDefault("DOCUMENT_LABEL", "docuflow")
	viper.SetDefault("LOCK_WAIT_DURATION", "30s")
	viper.SetDefault("WORKFLOW_RATE_LIMIT", "30-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.GoogleCredentialsJSON = viper.GetString("GOOGLE_CREDENTIALS_JSON")
	cfg.GoogleCredentialsFile = viper.GetString("GOOGLE_CREDENTIALS_FILE")
	if cfg.GoogleCredentialsJSON == "" && cfg.GoogleCredentialsFile == "" {
		log.Println("Warning: neither GOOGLE_CREDENTIALS_JSON nor GOOGLE_CREDENTIALS_FILE is set. Google API access will not function.")
	}

	cfg.MainSpreadsheetID = viper.GetString("MAIN_SPREADSHEET_ID")
	if cfg.MainSpreadsheetID == "" {
		log.Println("Warning: MAIN_SPREADSHEET_ID environment variable not set.")
	}
	cfg.DataSpreadsheetID = viper.GetString("DATA_SPREADSHEET_ID")
	if cfg.DataSpreadsheetID == "" {
		log.Println("Warning: DATA_SPREADSHEET_ID environment variable not set. The signature workflow will not function.")
	}
	cfg.PdfFolderID = viper.GetString("PDF_FOLDER_ID")
	cfg.ScriptID = viper.GetString("SCRIPT_ID")
	cfg.DocumentLabel = viper.GetString("DOCUMENT_LABEL")

	lockWaitStr := viper.GetString("LOCK_WAIT_DURATION")
	lockWaitDuration, err := time.ParseDuration(lockWaitStr)
	if err != nil {
		lockWaitDuration = 30 * time.Second
		log.Printf("Warning: Invalid value for LOCK_WAIT_DURATION ('%s'). Defaulting to %s.\n", lockWaitStr, lockWaitDuration.String())
	}
	cfg.LockWaitDuration = lockWaitDuration

	cfg.WorkflowRateLimit = viper.GetString("WORKFLOW_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
