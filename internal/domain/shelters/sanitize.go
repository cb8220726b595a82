package shelters

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText quita cualquier markup de un campo libre.
// StrictPolicy escapa entidades, así que se des-escapa al final ("Rua A & B" queda igual).
func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	cleaned := textPolicy.Sanitize(strings.TrimSpace(raw))
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// sanitizeOptional: "" después de limpiar => nil.
func sanitizeOptional(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := sanitizeText(*raw)
	if v == "" {
		return nil
	}
	return &v
}

func sanitizeInput(in CreateInput) CreateInput {
	in.Name = sanitizeText(in.Name)
	in.Address = sanitizeText(in.Address)
	in.Contact = sanitizeOptional(in.Contact)
	in.Pix = sanitizeOptional(in.Pix)
	return in
}
