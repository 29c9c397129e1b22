package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	Env              string
	DBUrl            string

	// Feature-flag snapshots
	LDFlag_CaseInsensitiveLocations bool
	LDFlag_SeedDbWithTestData       bool
	LDFlag_CORSHighSecurity         bool
}

const (
	OrganizationName    = utils.OrganizationName
	LDConnectionTimeout = 5 * time.Second

	flagCaseInsensitiveLocations = "case_insensitive_location_matching"
	flagSeedDbWithTestData       = "seed_db_with_test_data"
	flagCORSHighSecurity         = "using_cors_high_security"
)

// build-time overrides, set with -ldflags
var (
	AppName             = "requirements-service"
	LDServerContextKey  = "requirements-service"
	LDServerContextKind = "service"
)

// LoadConfig resolves configuration in order: .env file, environment,
// Bitwarden secrets, then LaunchDarkly flags. Missing required values are fatal.
func LoadConfig() *Config {
	//----------------------------------------------------------------------
	// 1) Optional .env for local runs
	//----------------------------------------------------------------------
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		utils.Logger.WithError(err).Warn("Ignoring unreadable .env file")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	//----------------------------------------------------------------------
	// 2) Runtime environment vars
	//----------------------------------------------------------------------
	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appURL := os.Getenv("APP_URL_FROM_ANYWHERE")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL_FROM_ANYWHERE env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	//----------------------------------------------------------------------
	// 3) BWS secrets (DB URL + LD SDK key) when a token is configured
	//----------------------------------------------------------------------
	secrets := map[string]string{}
	if utils.BWSEnabled() {
		secrets = loadBWSSecrets(fmt.Sprintf("%s-%s", AppName, env))
	} else {
		utils.Logger.Info("BWS_ACCESS_TOKEN not set; reading secrets from the environment")
	}

	dbURL := firstNonEmpty(secrets["DB_URL"], os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL missing in BWS secrets and DATABASE_URL env var is unset")
	}

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		AppPort:          appPort,
		AppUrl:           appURL,
		Env:              env,
		DBUrl:            dbURL,
	}

	//----------------------------------------------------------------------
	// 4) LaunchDarkly flags, defaults when no SDK key is available
	//----------------------------------------------------------------------
	if ldSDK := firstNonEmpty(secrets["LD_SDK_KEY"], os.Getenv("LD_SDK_KEY")); ldSDK != "" {
		loadFlags(cfg, ldSDK)
	} else {
		utils.Logger.Info("LD_SDK_KEY not set; using default feature flags")
	}

	utils.Logger.Infof("Loaded config for %s (%s)", AppName, env)
	return cfg
}

func loadBWSSecrets(project string) map[string]string {
	client, err := utils.NewBWSSecretsClient()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Init BWS client")
	}
	defer client.Close()

	utils.Logger.Debugf("Fetching secrets from BWS project %s", project)
	secrets, err := client.GetBWSSecrets(project)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Fetch BWS secrets")
	}
	return secrets
}

func loadFlags(cfg *Config, sdkKey string) {
	ldClient, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}

	ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	boolFlag := func(key string) bool {
		v, err := ldClient.BoolVariation(key, ctx, false)
		if err != nil {
			utils.Logger.WithError(err).Fatalf("%s flag error", key)
		}
		utils.Logger.Debugf("%s flag: %t", key, v)
		return v
	}

	cfg.LDFlag_CaseInsensitiveLocations = boolFlag(flagCaseInsensitiveLocations)
	cfg.LDFlag_SeedDbWithTestData = boolFlag(flagSeedDbWithTestData)
	cfg.LDFlag_CORSHighSecurity = boolFlag(flagCORSHighSecurity)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
