package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"google.golang.org/api/option"

	"mydaytasks/model"
)

var ErrCaptchaRejected = errors.New("reCAPTCHA verification failed")

// CaptchaVerifier checks a client-side reCAPTCHA token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action, userIP, userAgent string) (*model.AssessmentResult, error)
}

type RecaptchaVerifier struct {
	client    *recaptcha.Client
	projectID string
	siteKey   string
}

func NewRecaptchaVerifier(ctx context.Context, projectID, siteKey, credentialsPath string, opts ...option.ClientOption) (*RecaptchaVerifier, error) {
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	client, err := recaptcha.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating reCAPTCHA client: %w", err)
	}
	return &RecaptchaVerifier{client: client, projectID: projectID, siteKey: siteKey}, nil
}

func (v *RecaptchaVerifier) Close() error {
	return v.client.Close()
}

// Verify returns ErrCaptchaRejected when the token is invalid or was issued
// for a different action.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token, action, userIP, userAgent string) (*model.AssessmentResult, error) {
	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", v.projectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       v.siteKey,
				UserIpAddress: userIP,
				UserAgent:     userAgent,
			},
		},
	}

	response, err := v.client.CreateAssessment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createAssessment: %w", err)
	}
	return assessmentResult(response, action)
}

func assessmentResult(response *recaptchaenterprisepb.Assessment, action string) (*model.AssessmentResult, error) {
	props := response.GetTokenProperties()
	if props == nil || !props.GetValid() {
		if props != nil {
			log.Printf("Warning: reCAPTCHA token invalid: %s", props.GetInvalidReason())
		}
		return nil, ErrCaptchaRejected
	}

	if action != "" && props.GetAction() != action {
		log.Printf("Warning: reCAPTCHA action mismatch: expected %s, got %s", action, props.GetAction())
		return nil, ErrCaptchaRejected
	}

	result := &model.AssessmentResult{Action: props.GetAction()}
	if risk := response.GetRiskAnalysis(); risk != nil {
		result.Score = risk.GetScore()
		for _, reason := range risk.GetReasons() {
			result.Reasons = append(result.Reasons, reason.String())
		}
	}
	return result, nil
}
