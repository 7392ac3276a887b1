package constants

import (
	"github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/validator"
)

var EnvValidationRules = []validator.ValidationRule{
	// Server validation
	{
		Variable: "PORT",
		Default:  "3001",
		Rule:     config.IsValidPort,
		Message:  "server port is required and must be a valid port number",
	},
	{
		Variable: "GO_ENV",
		Default:  "development",
		Rule:     func(v string) bool { return v == "development" || v == "production" },
		Message:  "GO_ENV must be either 'development' or 'production'",
	},

	// Database validation
	{
		Variable: "MONGO_URI",
		Rule:     func(v string) bool { return v != "" },
		Message:  "MongoDB connection string is required",
	},
	{
		Variable: "MONGO_DB",
		Default:  "showcase",
		Rule:     func(v string) bool { return v != "" },
		Message:  "MongoDB database name is required",
	},

	// Blob storage validation
	{
		Variable: "S3_ENDPOINT",
		Rule:     func(v string) bool { return v != "" },
		Message:  "blob storage endpoint is required",
	},
	{
		Variable: "S3_ACCESS_KEY",
		Rule:     func(v string) bool { return v != "" },
		Message:  "blob storage access key is required",
	},
	{
		Variable: "S3_SECRET_KEY",
		Rule:     func(v string) bool { return v != "" },
		Message:  "blob storage secret key is required",
	},
	{
		Variable: "S3_BUCKET",
		Default:  "showcase",
		Rule:     func(v string) bool { return v != "" },
		Message:  "blob storage bucket is required",
	},
	{
		Variable: "S3_USE_SSL",
		Default:  "true",
		Rule:     func(v string) bool { return v == "true" || v == "false" },
		Message:  "S3_USE_SSL must be either 'true' or 'false'",
	},
}
