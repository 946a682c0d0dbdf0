package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"agrifarma/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16M"
	defaultSessionTTL         = 24 * time.Hour
	defaultResetTokenTTL      = time.Hour
	defaultMinPasswordLength  = 6
	defaultUploadBucketURL    = "file://./uploads?create_dir=true"
	defaultSQLitePath         = "agrifarma.db"
	defaultRateLimitPerSecond = 1
	defaultRateLimitBurst     = 5
	defaultSlowQueryThreshold = 200 * time.Millisecond
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// SecretKey holds two independent secrets; neither may be empty.
	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Uploads *UploadConfig `json:"uploads" yaml:"uploads"`

	// QRCode configuration for product share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate runs schema migration on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold marks queries logged as slow. Zero uses the default, negative disables.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

type SecretKeyConfig struct {
	Session       string `json:"session" yaml:"session"`
	PasswordReset string `json:"passwordReset" yaml:"passwordReset"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL        time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	ResetTokenTTL     time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	SecureCookie      bool          `json:"secureCookie" yaml:"secureCookie"`
}

// UploadConfig points at a gocloud.dev blob bucket, e.g. file:///var/lib/agrifarma/uploads.
type UploadConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RateLimitConfig throttles credential endpoints per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SECRETKEY_PASSWORDRESET -> secretKey.passwordReset
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env (when present), config.yaml and env overrides, then applies defaults.
func New() (*Config, error) {
	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.SlowQueryThreshold == 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.SQLite == nil {
		cfg.SQLite = &SQLiteConfig{}
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.ResetTokenTTL <= 0 {
		cfg.Auth.ResetTokenTTL = defaultResetTokenTTL
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}
	if cfg.Uploads == nil {
		cfg.Uploads = &UploadConfig{}
	}
	if cfg.Uploads.BucketURL == "" {
		cfg.Uploads.BucketURL = defaultUploadBucketURL
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultRateLimitPerSecond
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}
}

// Validate rejects configurations the server must not start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Session) == "" {
		return errors.New("secretKey.session must be provided")
	}
	if strings.TrimSpace(cfg.SecretKey.PasswordReset) == "" {
		return errors.New("secretKey.passwordReset must be provided")
	}
	if cfg.SecretKey.Session == cfg.SecretKey.PasswordReset {
		return errors.New("secretKey.session and secretKey.passwordReset must differ")
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required when database.driver is postgres")
		}
	default:
		return errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
