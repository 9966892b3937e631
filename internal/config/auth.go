package config

const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

type AuthConfig struct {
	Provider        string `yaml:"provider" validate:"oneof=firebase jwt"`
	CredentialsFile string `yaml:"credentials_file" validate:"required_if=Provider firebase"`
	ProjectID       string `yaml:"project_id"`
	JWTSecret       string `yaml:"jwt_secret"`
	JWTIssuer       string `yaml:"jwt_issuer"`
}

func loadAuthConfig() *AuthConfig {
	return &AuthConfig{
		Provider:        getEnv("AUTH_PROVIDER", AuthProviderFirebase),
		CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json"),
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTIssuer:       getEnv("JWT_ISSUER", "estatehub"),
	}
}
