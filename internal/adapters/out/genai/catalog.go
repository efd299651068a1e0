package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/validation"

	genaisdk "google.golang.org/genai"
)

var itemValidator = validation.New()

const searchPrompt = `Act as the product catalog of an Indian online pharmacy and diagnostics lab.
Return up to 6 medicines or lab tests matching the query %q.
Prices are in INR. Set category for medicines and preparation for lab tests.`

// catalogSchema mirrors catalog.Item.
var catalogSchema = &genaisdk.Schema{
	Type:     genaisdk.TypeArray,
	MaxItems: genaisdk.Ptr[int64](6),
	Items: &genaisdk.Schema{
		Type: genaisdk.TypeObject,
		Properties: map[string]*genaisdk.Schema{
			"id":          {Type: genaisdk.TypeString},
			"name":        {Type: genaisdk.TypeString},
			"description": {Type: genaisdk.TypeString},
			"price":       {Type: genaisdk.TypeNumber},
			"type":        {Type: genaisdk.TypeString, Enum: []string{string(catalog.TypeMedicine), string(catalog.TypeLabTest)}},
			"category":    {Type: genaisdk.TypeString},
			"preparation": {Type: genaisdk.TypeString},
		},
		Required: []string{"id", "name", "description", "price", "type"},
	},
}

// Search implements ports.CatalogSearcher. The model answers with JSON shaped
// by catalogSchema and every element is validated as a catalog.Item; elements
// that fail are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	prompt := genaisdk.NewContentFromText(fmt.Sprintf(searchPrompt, query), genaisdk.RoleUser)
	text, err := c.generate(ctx, []*genaisdk.Content{prompt}, &genaisdk.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   catalogSchema,
	})
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err = json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: catalog response is not a JSON array: %w", ports.ErrExternalServiceFailure, err)
	}

	items := make([]catalog.Item, 0, len(raw))
	for i, r := range raw {
		var item catalog.Item
		if err = json.Unmarshal(r, &item); err != nil {
			c.logger.WarnContext(ctx, "dropping undecodable catalog item", "index", i, "error", err)
			continue
		}
		if err = itemValidator.Struct(item); err != nil {
			c.logger.WarnContext(ctx, "dropping invalid catalog item", "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// stripCodeFence removes a ```json fence some models put around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
