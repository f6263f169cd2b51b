package challenge

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	catalogSchemaOnce sync.Once
	catalogSchema     *openapi3.Schema
)

// validateCatalogDocument checks a decoded catalog document against the
// catalog schema. The rule payload is deliberately loose, a string for
// legacy rules or a type/value object for structured ones, mirroring the
// two forms the constraint boundary resolves.
func validateCatalogDocument(doc any) error {
	if err := catalogDocumentSchema().VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("challenge: invalid catalog document: %w", err)
	}
	return nil
}

func catalogDocumentSchema() *openapi3.Schema {
	catalogSchemaOnce.Do(func() {
		legacyRule := openapi3.NewStringSchema()

		structuredRule := openapi3.NewObjectSchema().
			WithProperty("type", openapi3.NewStringSchema()).
			WithProperty("value", openapi3.NewOneOfSchema(
				openapi3.NewFloat64Schema(),
				openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()),
			)).
			WithProperty("description", openapi3.NewStringSchema())
		structuredRule.Required = []string{"type", "value"}

		entry := openapi3.NewObjectSchema().
			WithProperty("title", openapi3.NewStringSchema()).
			WithProperty("description", openapi3.NewStringSchema()).
			WithProperty("constraints", openapi3.NewArraySchema().
				WithItems(openapi3.NewOneOfSchema(legacyRule, structuredRule))).
			WithProperty("suggestedFormat", openapi3.NewStringSchema()).
			WithProperty("suggestedDuration", openapi3.NewIntegerSchema())
		entry.Required = []string{"title"}

		document := openapi3.NewObjectSchema().
			WithProperty("challenges", openapi3.NewArraySchema().WithItems(entry))
		document.Required = []string{"challenges"}

		catalogSchema = document
	})
	return catalogSchema
}
