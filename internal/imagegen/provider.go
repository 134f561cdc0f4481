// Package imagegen generates and caches the illustration images attached
// to content cards.
package imagegen

import "context"

// Provider turns a text prompt into PNG image bytes. size is a hint
// ("square" or "vertical"); implementations map it to whatever their
// backend understands.
type Provider interface {
	Generate(ctx context.Context, prompt, size string) ([]byte, error)
}
