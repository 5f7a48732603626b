package connection

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mydaytasks/config"
	aicontroller "mydaytasks/controller/ai"
	authcontroller "mydaytasks/controller/auth"
	insightcontroller "mydaytasks/controller/insight"
	taskcontroller "mydaytasks/controller/task"
	"mydaytasks/dto"
	"mydaytasks/middleware"
	"mydaytasks/services"
	"mydaytasks/services/assistant"
)

// Deps are the services the HTTP layer is built on. Tokens is nil when
// auth is disabled; Captcha is nil when sign-in needs no captcha.
type Deps struct {
	State             *services.TaskState
	Assistant         assistant.Assistant
	Tokens            *services.TokenService
	OwnerPasswordHash string
	Captcha           services.CaptchaVerifier
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	var auth []gin.HandlerFunc
	if deps.Tokens != nil {
		auth = append(auth, middleware.AccessTokenMiddleware(deps.Tokens))
		authcontroller.AuthController(router, deps.Tokens, deps.OwnerPasswordHash, deps.Captcha)
	}

	taskcontroller.TaskController(router, deps.State, auth...)
	aicontroller.AIController(router, deps.Assistant, deps.State, auth...)
	insightcontroller.InsightController(router, deps.State, auth...)

	return router, nil
}

func StartServer(cfg *config.Config) error {
	ctx := context.Background()

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open task storage: %w", err)
	}
	defer store.Close()

	state := services.NewTaskState(store)
	state.Load(ctx)

	var remote assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
		if err != nil {
			log.Printf("Warning: Gemini unavailable, using local assistant: %v", err)
		} else {
			remote = gemini
		}
	}

	deps := Deps{
		State:     state,
		Assistant: assistant.WithFallback(remote, assistant.NewLocal()),
	}

	if cfg.AuthEnabled() {
		deps.Tokens = services.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret)
		deps.OwnerPasswordHash = cfg.OwnerPasswordHash
		if cfg.CaptchaEnabled() {
			verifier, err := services.NewRecaptchaVerifier(ctx, cfg.CaptchaProjectID, cfg.CaptchaSiteKey, cfg.CaptchaCredentials)
			if err != nil {
				return err
			}
			defer verifier.Close()
			deps.Captcha = verifier
		}
	} else {
		log.Println("Warning: JWT_SECRET_KEY is not set, the API is running without authentication")
	}

	router, err := NewRouter(deps)
	if err != nil {
		return err
	}
	return router.Run(":" + cfg.Port)
}
