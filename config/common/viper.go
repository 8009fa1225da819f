package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("no .env file found, relying on environment: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName, appPort string) {
	appName = c.Viper.GetString("APP_NAME")
	appPort = c.Viper.GetString("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}
	return appName, appPort
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetUploadDir() string {
	dir := c.Viper.GetString("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func (c *Config) GetTwilioConfig() (accountSID, authToken, fromNumber string) {
	accountSID = c.Viper.GetString("TWILIO_ACCOUNT_SID")
	authToken = c.Viper.GetString("TWILIO_AUTH_TOKEN")
	fromNumber = c.Viper.GetString("TWILIO_PHONE_NUMBER")

	return accountSID, authToken, fromNumber
}
