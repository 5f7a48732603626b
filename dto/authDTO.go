package dto

type SigninRequest struct {
	Password string `json:"password" binding:"required"`
	Captcha  string `json:"captcha"`
	Action   string `json:"action"`
}

type CaptchaRequest struct {
	Token  string `json:"token" binding:"required"`
	Action string `json:"action"`
}
