package config

import (
	"github.com/spf13/viper"
)

// The service is expected to run with these set as environment variables on
// the pod; the defaults below point everything at a local docker-compose
// stack (LocalStack for AWS, the erp-mock tool for the ERP).

type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	IsLocalDev        bool   `mapstructure:"IS_LOCAL_DEV"`
	AWSRegion         string `mapstructure:"AWS_REGION"`
	AWSEndpoint       string `mapstructure:"AWS_ENDPOINT"`
	ReportSQSQueueURL string `mapstructure:"REPORT_SQS_QUEUE_URL"`
	ReportSender      string `mapstructure:"REPORT_SENDER_EMAIL"`
	ERPBaseURL        string `mapstructure:"ERP_BASE_URL"`
	ERPAPIKey         string `mapstructure:"ERP_API_KEY"`
	ERPAPISecret      string `mapstructure:"ERP_API_SECRET"`
	OTLPEndpoint      string `mapstructure:"OTLP_ENDPOINT"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("IS_LOCAL_DEV", true)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("REPORT_SQS_QUEUE_URL", "http://localstack:4566/000000000000/report-queue")
	viper.SetDefault("REPORT_SENDER_EMAIL", "reports@worklog-service.com")
	viper.SetDefault("ERP_BASE_URL", "http://localhost:8081")
	viper.SetDefault("ERP_API_KEY", "")
	viper.SetDefault("ERP_API_SECRET", "")
	viper.SetDefault("OTLP_ENDPOINT", "jaeger:4317")

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
