package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados
const (
	StorageFirestore = "firestore"
	StorageMongo     = "mongo"
	StoragePostgres  = "postgres"
	StorageMemory    = "memory"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
	Firebase Firebase `mapstructure:",squash"`
	Mongo    Mongo    `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	SalesPath    string `mapstructure:"sales_route_path"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type Storage struct {
	Driver     string `mapstructure:"storage_driver"`
	Collection string `mapstructure:"sales_collection"`
}

// Firebase contém os campos da conta de serviço usada para criar o cliente do Firestore
type Firebase struct {
	Type                string `mapstructure:"firebase_type"`
	ProjectID           string `mapstructure:"firebase_project_id"`
	PrivateKeyID        string `mapstructure:"firebase_private_key_id"`
	PrivateKey          string `mapstructure:"firebase_private_key"`
	ClientEmail         string `mapstructure:"firebase_client_email"`
	ClientID            string `mapstructure:"firebase_client_id"`
	AuthURI             string `mapstructure:"firebase_auth_uri"`
	TokenURI            string `mapstructure:"firebase_token_uri"`
	AuthProviderCertURL string `mapstructure:"firebase_auth_provider_cert"`
	ClientCertURL       string `mapstructure:"firebase_client_cert"`
	UniverseDomain      string `mapstructure:"firebase_universe_domain"`
}

type Mongo struct {
	URI      string `mapstructure:"mongo_uri"`
	Database string `mapstructure:"mongo_database"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SALES_ROUTE_PATH", "/api/data")
	viper.SetDefault("MAX_BODY_BYTES", 1<<20)

	viper.SetDefault("STORAGE_DRIVER", StorageFirestore)
	viper.SetDefault("SALES_COLLECTION", "salesData")

	viper.SetDefault("FIREBASE_TYPE", "service_account")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_PRIVATE_KEY_ID", "")
	viper.SetDefault("FIREBASE_PRIVATE_KEY", "")
	viper.SetDefault("FIREBASE_CLIENT_EMAIL", "")
	viper.SetDefault("FIREBASE_CLIENT_ID", "")
	viper.SetDefault("FIREBASE_CLIENT_CERT", "")
	viper.SetDefault("FIREBASE_AUTH_URI", "https://accounts.google.com/o/oauth2/auth")
	viper.SetDefault("FIREBASE_TOKEN_URI", "https://oauth2.googleapis.com/token")
	viper.SetDefault("FIREBASE_AUTH_PROVIDER_CERT", "https://www.googleapis.com/oauth2/v1/certs")
	viper.SetDefault("FIREBASE_UNIVERSE_DOMAIN", "googleapis.com")

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "sales")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "production")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))
	config.Firebase.PrivateKey = NormalizePrivateKey(config.Firebase.PrivateKey)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// NormalizePrivateKey troca as sequências literais "\n" por quebras de linha reais.
// Variáveis de ambiente de provedores serverless costumam guardar a chave PEM em uma linha só.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
