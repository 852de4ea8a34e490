// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.cors", "host_cors")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.path", "database_path")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("admin.token", "admin_token")

	v.BindEnv("s3.access_key_id", "s3_access_key_id")
	v.BindEnv("s3.secret_access_key", "s3_secret_access_key")
	v.BindEnv("s3.region", "s3_region")
	v.BindEnv("s3.bucket", "s3_bucket")
	v.BindEnv("s3.sign_expiry", "s3_sign_expiry")

	v.BindEnv("upload.image_max_size", "upload_image_max_size")
	v.BindEnv("upload.video_max_size", "upload_video_max_size")

	v.BindEnv("ratelimit.global_rps", "ratelimit_global_rps")
	v.BindEnv("ratelimit.contact.limit", "ratelimit_contact_limit")
	v.BindEnv("ratelimit.contact.window", "ratelimit_contact_window")
	v.BindEnv("ratelimit.join.limit", "ratelimit_join_limit")
	v.BindEnv("ratelimit.join.window", "ratelimit_join_window")

	v.BindEnv("stories.sort_gap", "stories_sort_gap")
	v.BindEnv("stories.page_limit", "stories_page_limit")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors", "http://localhost:5173")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "database.db")

	v.SetDefault("s3.sign_expiry", "15m")

	// Both are megabytes and converted to bytes at the end
	v.SetDefault("upload.image_max_size", 6)
	v.SetDefault("upload.video_max_size", 80)

	v.SetDefault("ratelimit.global_rps", 20)
	v.SetDefault("ratelimit.contact.limit", 10)
	v.SetDefault("ratelimit.contact.window", "10m")
	v.SetDefault("ratelimit.join.limit", 5)
	v.SetDefault("ratelimit.join.window", "10m")

	v.SetDefault("stories.sort_gap", 10)
	v.SetDefault("stories.page_limit", 500)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("admin.token") == "" {
		return errors.New("admin.token must be set")
	}

	switch v.GetString("database.driver") {
	case "sqlite":
		if v.GetString("database.path") == "" {
			return errors.New("database path can't be empty")
		}
	case "postgres":
		if v.GetString("database.dsn") == "" {
			return errors.New("database dsn can't be empty")
		}
	default:
		return errors.New("invalid database driver provided")
	}

	if v.GetString("s3.access_key_id") == "" {
		return errors.New("s3 access key id can't be empty")
	}
	if v.GetString("s3.secret_access_key") == "" {
		return errors.New("s3 secret access key can't be empty")
	}
	if v.GetString("s3.bucket") == "" {
		return errors.New("s3 bucket can't be empty")
	}

	if v.GetInt("upload.image_max_size") <= 0 {
		return errors.New("upload.image_max_size must be bigger than 0")
	}
	if v.GetInt("upload.video_max_size") <= 0 {
		return errors.New("upload.video_max_size must be bigger than 0")
	}

	if v.GetInt("ratelimit.contact.limit") <= 0 || v.GetInt("ratelimit.join.limit") <= 0 {
		return errors.New("rate limits must be bigger than 0")
	}
	if v.GetDuration("ratelimit.contact.window") <= 0 || v.GetDuration("ratelimit.join.window") <= 0 {
		return errors.New("rate limit windows must be bigger than 0")
	}

	if v.GetInt("stories.sort_gap") <= 0 {
		return errors.New("stories.sort_gap must be bigger than 0")
	}
	if v.GetInt("stories.page_limit") <= 0 {
		return errors.New("stories.page_limit must be bigger than 0")
	}

	v.Set("upload.image_max_size", v.GetInt64("upload.image_max_size")<<20)
	v.Set("upload.video_max_size", v.GetInt64("upload.video_max_size")<<20)
	return nil
}
