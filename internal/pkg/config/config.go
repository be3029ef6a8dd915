package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Signature SignatureConfig
	PDF       PDFConfig
	Company   CompanyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Base for links handed to customers, e.g. https://dealer.example.nl
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Amsterdam"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Amsterdam"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// Staff tokens are issued by the back-office auth service; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type StorageConfig struct {
	Driver        string `envconfig:"STORAGE_DRIVER" default:"local"` // local | gcs
	LocalDir      string `envconfig:"STORAGE_LOCAL_DIR" default:"./data/blobs"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"http://localhost:8080/files"`
	GCSBucket     string `envconfig:"STORAGE_GCS_BUCKET" default:""`
	// Falls back to application default credentials when empty
	GCSCredentialsFile string        `envconfig:"STORAGE_GCS_CREDENTIALS_FILE" default:""`
	SignedURLTTL       time.Duration `envconfig:"STORAGE_SIGNED_URL_TTL" default:"168h"`
}

type SignatureConfig struct {
	Validity time.Duration `envconfig:"SIGNATURE_VALIDITY" default:"168h"`
	// Upper bound for the decoded signature image
	MaxImageBytes int `envconfig:"SIGNATURE_MAX_IMAGE_BYTES" default:"1048576"`
}

type PDFConfig struct {
	MaxConcurrency int64 `envconfig:"PDF_MAX_CONCURRENCY" default:"4"`
	Validate       bool  `envconfig:"PDF_VALIDATE" default:"true"`
}

type CompanyConfig struct {
	TradeName  string `envconfig:"COMPANY_TRADE_NAME" default:"Autocity"`
	Street     string `envconfig:"COMPANY_STREET" default:""`
	PostalCode string `envconfig:"COMPANY_POSTAL_CODE" default:""`
	City       string `envconfig:"COMPANY_CITY" default:""`
	VATID      string `envconfig:"COMPANY_VAT_ID" default:""`
	IBAN       string `envconfig:"COMPANY_IBAN" default:""`
	KvKNumber  string `envconfig:"COMPANY_KVK" default:""`
	Phone      string `envconfig:"COMPANY_PHONE" default:""`
	Email      string `envconfig:"COMPANY_EMAIL" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Amsterdam",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Amsterdam",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Storage: StorageConfig{
			Driver:        "local",
			LocalDir:      "",
			PublicBaseURL: "http://localhost:8889/files",
			SignedURLTTL:  time.Hour,
		},
		Signature: SignatureConfig{
			Validity:      7 * 24 * time.Hour,
			MaxImageBytes: 1 << 20,
		},
		PDF: PDFConfig{
			MaxConcurrency: 2,
			Validate:       true,
		},
		Company: CompanyConfig{
			TradeName:  "Autocity",
			Street:     "Industrieweg 12",
			PostalCode: "1234 AB",
			City:       "Utrecht",
			VATID:      "NL001234567B01",
			IBAN:       "NL91ABNA0417164300",
			KvKNumber:  "12345678",
			Phone:      "030-1234567",
			Email:      "verkoop@autocity.example",
		},
	}
}
