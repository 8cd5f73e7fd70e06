// Package observability provides metrics for the test harness configuration.
package observability

import (
	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys
const (
	attrVariable = "variable"
	attrSource   = "source"
)

func variableAttr(name string) attribute.KeyValue {
	return attribute.String(attrVariable, name)
}

func sourceAttr(source string) attribute.KeyValue {
	return attribute.String(attrSource, source)
}

// boolValue maps a flag onto a gauge value.
func boolValue(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
