// Package schema derives an OpenAPI 3 schema for a questionnaire's answer
// record and validates submitted payloads against it.
package schema
