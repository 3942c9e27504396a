package cli

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"quizogram-client/internal/api"
	"quizogram-client/internal/app"
	"quizogram-client/internal/auth"
	"quizogram-client/internal/config"
	"quizogram-client/internal/infra/memory"
	rediscache "quizogram-client/internal/infra/redis"
)

const defaultServerURL = "http://localhost:8000"

// clientEnv bundles everything a command needs to talk to the service.
type clientEnv struct {
	cfg    config.Config
	tokens *auth.FileStore
	client *api.Client
}

func buildEnv(configPath, serverFlag string) (clientEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return clientEnv{}, err
	}

	tokenPath := cfg.Auth.TokenPath
	if tokenPath == "" {
		tokenPath = auth.DefaultTokenPath()
	}
	tokens := auth.NewFileStore(tokenPath)

	timeout := config.Duration(cfg.Server.Timeout, 15*time.Second)
	client := api.New(resolveServerURL(cfg, serverFlag), tokens, api.WithTimeout(timeout))

	return clientEnv{cfg: cfg, tokens: tokens, client: client}, nil
}

// resolveServerURL picks the service base URL: an explicit --server flag
// beats QUIZOGRAM_SERVER_URL and the config file (already merged by
// config.Load, env over YAML), which beat the built-in default.
func resolveServerURL(cfg config.Config, serverFlag string) string {
	if serverFlag != "" {
		return serverFlag
	}
	if cfg.Server.URL != "" {
		return cfg.Server.URL
	}
	return defaultServerURL
}

// quizSource wires the quiz cache in front of the API client: Redis when
// configured, in-process TTL cache otherwise.
func (e clientEnv) quizSource() app.QuizSource {
	ttl := config.Duration(e.cfg.Cache.TTL, 10*time.Minute)
	if e.cfg.Cache.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     e.cfg.Cache.RedisAddr,
			Password: e.cfg.Cache.RedisPassword,
			DB:       e.cfg.Cache.RedisDB,
		})
		return rediscache.NewQuizCache(client, e.client, ttl)
	}
	return memory.NewQuizCache(e.client, ttl)
}
