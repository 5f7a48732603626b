package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mydaytasks/dto"
	"mydaytasks/middleware"
	"mydaytasks/services"
)

const signinAction = "signin"

// AuthController registers the owner sign-in routes. captcha may be nil, in
// which case sign-in needs only the password.
func AuthController(router *gin.Engine, tokens *services.TokenService, passwordHash string, captcha services.CaptchaVerifier) {
	routes := router.Group("/auth")
	{
		routes.POST("/signin", func(c *gin.Context) {
			Signin(c, tokens, passwordHash, captcha)
		})
		routes.POST("/refresh", middleware.RefreshTokenMiddleware(tokens), func(c *gin.Context) {
			Refresh(c, tokens)
		})
		routes.POST("/signout", middleware.AccessTokenMiddleware(tokens), func(c *gin.Context) {
			Signout(c, tokens)
		})
		if captcha != nil {
			routes.POST("/captcha", func(c *gin.Context) {
				VerifyCaptcha(c, captcha)
			})
		}
	}
}

func Signin(c *gin.Context, tokens *services.TokenService, passwordHash string, captcha services.CaptchaVerifier) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if captcha != nil {
		if request.Captcha == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Captcha token is required"})
			return
		}
		action := request.Action
		if action == "" {
			action = signinAction
		}
		if _, err := captcha.Verify(c.Request.Context(), request.Captcha, action, getClientIP(c), c.Request.UserAgent()); err != nil {
			captchaError(c, err)
			return
		}
	}

	if err := services.CheckPassword(passwordHash, request.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	pair, err := tokens.IssuePair(services.OwnerID)
	if err != nil {
		log.Printf("signin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token":   pair,
	})
}

// Refresh rotates the token pair; the presented refresh token stops working.
func Refresh(c *gin.Context, tokens *services.TokenService) {
	userID := c.MustGet("userId").(string)

	pair, err := tokens.IssuePair(userID)
	if err != nil {
		log.Printf("refresh: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": pair})
}

func Signout(c *gin.Context, tokens *services.TokenService) {
	tokens.Revoke(c.MustGet("userId").(string))
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func VerifyCaptcha(c *gin.Context, captcha services.CaptchaVerifier) {
	var req dto.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Token is required"})
		return
	}

	result, err := captcha.Verify(c.Request.Context(), req.Token, req.Action, getClientIP(c), c.Request.UserAgent())
	if err != nil {
		captchaError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"score":   result.Score,
		"action":  result.Action,
		"reasons": result.Reasons,
		"message": "Captcha verified successfully",
	})
}

func captchaError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrCaptchaRejected) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "reCAPTCHA verification failed"})
		return
	}
	log.Printf("Error verifying reCAPTCHA: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}

func getClientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	// first hop only
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	return ip
}
