package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	Port               string
	OutputDir          string
	TokenFile          string
	PythonBin          string
	FFmpegBin          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	GeminiAPIKey       string
	PexelsAPIKey       string
	FrontendURL        string
	SecretKey          string
	R2                 R2
}

func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "3001"),
		OutputDir:          getEnv("OUTPUT_DIR", "output"),
		TokenFile:          getEnv("TOKEN_FILE", "tokens.json"),
		PythonBin:          getEnv("PYTHON_BIN", "python"),
		FFmpegBin:          getEnv("FFMPEG_BIN", "ffmpeg"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		PexelsAPIKey:       getEnv("PEXELS_API_KEY", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
