package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mydaytasks/model"
	"mydaytasks/services"
)

// MockCaptcha implements services.CaptchaVerifier.
type MockCaptcha struct {
	VerifyFunc func(ctx context.Context, token, action, userIP, userAgent string) (*model.AssessmentResult, error)
}

func (m *MockCaptcha) Verify(ctx context.Context, token, action, userIP, userAgent string) (*model.AssessmentResult, error) {
	return m.VerifyFunc(ctx, token, action, userIP, userAgent)
}

func setupRouter(t *testing.T, captcha services.CaptchaVerifier) (*gin.Engine, *services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := services.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	tokens := services.NewTokenService("access", "refresh")
	router := gin.New()
	AuthController(router, tokens, hash, captcha)
	return router, tokens
}

func post(router *gin.Engine, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type tokenResponse struct {
	Token model.TokenPair `json:"token"`
}

func TestSignin(t *testing.T) {
	router, tokens := setupRouter(t, nil)

	if w := post(router, "/auth/signin", "", gin.H{}); w.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", w.Code)
	}
	if w := post(router, "/auth/signin", "", gin.H{"password": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}

	w := post(router, "/auth/signin", "", gin.H{"password": "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp tokenResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if _, err := tokens.ParseAccessToken(resp.Token.AccessToken); err != nil {
		t.Errorf("issued access token invalid: %v", err)
	}

	// captcha route is only registered with a verifier
	if w := post(router, "/auth/captcha", "", gin.H{"token": "x"}); w.Code != http.StatusNotFound {
		t.Errorf("captcha route status = %d, want 404", w.Code)
	}
}

func TestRefreshRotatesAndSignoutRevokes(t *testing.T) {
	router, _ := setupRouter(t, nil)

	var signin tokenResponse
	w := post(router, "/auth/signin", "", gin.H{"password": "hunter2"})
	json.Unmarshal(w.Body.Bytes(), &signin)

	w = post(router, "/auth/refresh", signin.Token.RefreshToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, body = %s", w.Code, w.Body.String())
	}
	var refreshed tokenResponse
	json.Unmarshal(w.Body.Bytes(), &refreshed)

	if w := post(router, "/auth/refresh", signin.Token.RefreshToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("reused refresh token status = %d, want 403", w.Code)
	}

	if w := post(router, "/auth/signout", refreshed.Token.AccessToken, nil); w.Code != http.StatusOK {
		t.Errorf("signout status = %d", w.Code)
	}
	if w := post(router, "/auth/refresh", refreshed.Token.RefreshToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("refresh after signout status = %d, want 403", w.Code)
	}
}

func TestSigninWithCaptcha(t *testing.T) {
	var gotAction string
	captcha := &MockCaptcha{
		VerifyFunc: func(ctx context.Context, token, action, userIP, userAgent string) (*model.AssessmentResult, error) {
			gotAction = action
			switch token {
			case "good":
				return &model.AssessmentResult{Score: 0.9, Action: action}, nil
			case "bad":
				return nil, services.ErrCaptchaRejected
			}
			return nil, errors.New("service unavailable")
		},
	}
	router, _ := setupRouter(t, captcha)

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{"missing captcha", gin.H{"password": "hunter2"}, http.StatusBadRequest},
		{"rejected captcha", gin.H{"password": "hunter2", "captcha": "bad"}, http.StatusBadRequest},
		{"captcha service error", gin.H{"password": "hunter2", "captcha": "boom"}, http.StatusInternalServerError},
		{"wrong password", gin.H{"password": "nope", "captcha": "good"}, http.StatusUnauthorized},
		{"ok", gin.H{"password": "hunter2", "captcha": "good"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := post(router, "/auth/signin", "", tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
	if gotAction != signinAction {
		t.Errorf("default action = %q, want %q", gotAction, signinAction)
	}

	w := post(router, "/auth/captcha", "", gin.H{"token": "good", "action": "login"})
	if w.Code != http.StatusOK {
		t.Errorf("captcha status = %d", w.Code)
	}
}
