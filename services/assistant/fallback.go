package assistant

import (
	"context"
	"log"
)

type fallback struct {
	remote Assistant
	local  *Local
}

// WithFallback returns remote wrapped so that any remote failure is logged
// and answered by local instead. A nil remote yields local itself.
func WithFallback(remote Assistant, local *Local) Assistant {
	if remote == nil {
		return local
	}
	return &fallback{remote: remote, local: local}
}

func (f *fallback) ParseNaturalLanguage(ctx context.Context, input string) (ParsedTask, error) {
	parsed, err := f.remote.ParseNaturalLanguage(ctx, input)
	if err != nil {
		log.Printf("Warning: AI parsing failed, using local fallback: %v\n", err)
		return f.local.ParseNaturalLanguage(ctx, input)
	}
	return parsed, nil
}

func (f *fallback) EstimateTime(ctx context.Context, title, description string) (TimeEstimate, error) {
	est, err := f.remote.EstimateTime(ctx, title, description)
	if err != nil {
		log.Printf("Warning: AI time estimation failed, using local fallback: %v\n", err)
		return f.local.EstimateTime(ctx, title, description)
	}
	return est, nil
}

func (f *fallback) Breakdown(ctx context.Context, description string) (Breakdown, error) {
	b, err := f.remote.Breakdown(ctx, description)
	if err != nil {
		log.Printf("Warning: AI breakdown failed, using local fallback: %v\n", err)
		return f.local.Breakdown(ctx, description)
	}
	return b, nil
}
