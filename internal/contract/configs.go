package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/schoolscore/schema"
)

// Default values for configuration.
const (
	DefaultIndicatorThreshold = 50
	DefaultGradeFully         = 90.0
	DefaultGradeMostly        = 70.0
	DefaultGradeAchieved      = 50.0
	DefaultPrecision          = 1
)

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	SchoolID  string
	Dimension string

	IndicatorThreshold int
	GradeFully         float64
	GradeMostly        float64
	GradeAchieved      float64

	CatalogPath string
	GraphsPath  string

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	RemoteBackend   schema.DatabaseBackend
	RemoteDBConnect string // Please use env var as this is plaintext

	LocalBackend   schema.DatabaseBackend
	LocalDBConnect string

	UseColors bool // Enable colored grades in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	SchoolID  string `mapstructure:"school-id" validate:"omitempty,max=50"`
	Dimension string `mapstructure:"dimension" validate:"omitempty,oneof=D1 D2 D3 D4 D5"`

	IndicatorThreshold int     `mapstructure:"indicator-threshold" validate:"gte=0,lte=100"`
	GradeFully         float64 `mapstructure:"grade-fully" validate:"gte=0,lte=100"`
	GradeMostly        float64 `mapstructure:"grade-mostly" validate:"gte=0,lte=100"`
	GradeAchieved      float64 `mapstructure:"grade-achieved" validate:"gte=0,lte=100"`

	Catalog string `mapstructure:"catalog"`
	Graphs  string `mapstructure:"graphs"`

	Precision  int    `mapstructure:"precision" validate:"min=1,max=2"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width" validate:"gte=0"`

	RemoteBackend   string `mapstructure:"remote-backend"`
	RemoteDBConnect string `mapstructure:"remote-db-connect"`
	LocalBackend    string `mapstructure:"local-backend"`
	LocalDBConnect  string `mapstructure:"local-db-connect"`

	Color string `mapstructure:"color"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config key rather than the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate converts the raw input into the final config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateGradeThresholds(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// validateStruct runs the validator tags and converts failures to a ValidationError.
func validateStruct(input *ConfigRawInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Err: ErrInvalidInput}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte", "min":
		return fmt.Sprintf("must be at least %s (received %v)", fe.Param(), fe.Value())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s (received %v)", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of %s (received %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SchoolID = strings.TrimSpace(input.SchoolID)
	cfg.Dimension = input.Dimension
	cfg.IndicatorThreshold = input.IndicatorThreshold
	cfg.CatalogPath = input.Catalog
	cfg.GraphsPath = input.Graphs
	cfg.OutputFile = input.OutputFile
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	if cfg.SchoolID != "" {
		if _, err := SanitizeSchoolID(cfg.SchoolID); err != nil {
			return err
		}
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return NewValidationError("output", fmt.Sprintf("invalid output format '%s'. must be text, csv, json, parquet", input.Output))
	}
	return nil
}

func validateGradeThresholds(cfg *Config, input *ConfigRawInput) error {
	if input.GradeFully < input.GradeMostly || input.GradeMostly < input.GradeAchieved {
		return NewValidationError("grade-fully",
			fmt.Sprintf("grade thresholds must be ordered fully >= mostly >= achieved (received %.1f, %.1f, %.1f)",
				input.GradeFully, input.GradeMostly, input.GradeAchieved))
	}
	cfg.GradeFully = input.GradeFully
	cfg.GradeMostly = input.GradeMostly
	cfg.GradeAchieved = input.GradeAchieved
	return nil
}

// ValidateDatabaseConnectionString validates the connection string format for a backend.
func ValidateDatabaseConnectionString(flag string, backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flag, backend)
		}
		if _, err := mysql.ParseDSN(connStr); err != nil {
			return fmt.Errorf("invalid MySQL connection string: %w", err)
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flag, backend)
		}
		if !strings.HasPrefix(connStr, "postgres://") && !strings.HasPrefix(connStr, "postgresql://") {
			if !strings.Contains(connStr, "host=") {
				return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
			}
			if !strings.Contains(connStr, "dbname=") {
				return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
			}
		}
	}
	return nil
}

// validateBackendConfigs checks both stores and keeps their sqlite files apart.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.RemoteBackend = schema.DatabaseBackend(strings.ToLower(input.RemoteBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.RemoteBackend]; !ok {
		return fmt.Errorf("invalid remote backend '%s'. must be sqlite, mysql, postgresql, none", input.RemoteBackend)
	}
	cfg.RemoteDBConnect = input.RemoteDBConnect
	if err := ValidateDatabaseConnectionString("remote-db-connect", cfg.RemoteBackend, cfg.RemoteDBConnect); err != nil {
		return err
	}

	// The local cache lives on this machine only
	cfg.LocalBackend = schema.DatabaseBackend(strings.ToLower(input.LocalBackend))
	if cfg.LocalBackend != schema.SQLiteBackend && cfg.LocalBackend != schema.NoneBackend {
		return fmt.Errorf("invalid local backend '%s'. must be sqlite, none", input.LocalBackend)
	}
	cfg.LocalDBConnect = input.LocalDBConnect

	if cfg.RemoteBackend == schema.SQLiteBackend && cfg.LocalBackend == schema.SQLiteBackend {
		remotePath := cfg.RemoteDBConnect
		if remotePath == "" {
			remotePath = GetRemoteDBFilePath()
		}
		localPath := cfg.LocalDBConnect
		if localPath == "" {
			localPath = GetLocalCacheDBFilePath()
		}
		if remotePath == localPath {
			return fmt.Errorf("remote and local storage must use different SQLite database files. Both resolve to %q", remotePath)
		}
	}
	return nil
}
