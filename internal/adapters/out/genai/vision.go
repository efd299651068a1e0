package genai

import (
	"context"

	genaisdk "google.golang.org/genai"
)

// Analyze implements ports.ImageAnalyzer. The image travels as an inline data part.
func (c *Client) Analyze(ctx context.Context, image []byte, mimeType, instruction string) (string, error) {
	parts := []*genaisdk.Part{
		genaisdk.NewPartFromBytes(image, mimeType),
		genaisdk.NewPartFromText(instruction),
	}
	return c.generate(ctx, []*genaisdk.Content{genaisdk.NewContentFromParts(parts, genaisdk.RoleUser)}, nil)
}
