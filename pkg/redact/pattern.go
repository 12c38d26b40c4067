package redact

import (
	"log/slog"
	"regexp"
)

// Pattern is a declarative redaction rule: a regex and the placeholder
// that replaces its matches.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are applied in order. More specific digit patterns
// (SSN, card) run before the generic phone sweep so a card number is not
// half-eaten by the phone regex first.
var builtinPatterns = []Pattern{
	{
		Name:        "ssn",
		Pattern:     `\b\d{3}-\d{2}-\d{4}\b`,
		Replacement: "{{SSN}}",
		Description: "US social security numbers",
	},
	{
		Name:        "card_number",
		Pattern:     `\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{2,4}\b`,
		Replacement: "{{CARD_NUMBER}}",
		Description: "Payment card numbers, with or without separators",
	},
	{
		Name:        "account_number",
		Pattern:     `((?i:account)(?i:\s+number)?(?i:\s+is)?[:#\s]+)\d{6,14}\b`,
		Replacement: "${1}{{ACCOUNT_NUMBER}}",
		Description: "Account numbers introduced by an account keyword",
	},
	{
		Name:        "order_id",
		Pattern:     `((?i:order)(?i:\s+(?:number|id))?(?i:\s+is)?[:#\s]+)[A-Z0-9][A-Z0-9-]{3,}\b`,
		Replacement: "${1}{{ORDER_ID}}",
		Description: "Order identifiers introduced by an order keyword",
	},
	{
		Name:        "phone",
		Pattern:     `(?:\+?1[ .-]?)?(?:\(\d{3}\)|\b\d{3})[ .-]?\d{3}[ .-]?\d{4}\b`,
		Replacement: "{{PHONE}}",
		Description: "North American phone numbers",
	},
	{
		Name:        "email",
		Pattern:     `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
		Replacement: "{{EMAIL}}",
		Description: "Email addresses",
	},
	{
		Name:        "address",
		Pattern:     `(?i)\b\d{1,5}\s+(?:[A-Za-z]+\s+){1,3}(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|place|pl|way)\b\.?`,
		Replacement: "{{ADDRESS}}",
		Description: "Street addresses",
	},
	{
		Name:        "name",
		Pattern:     `\b((?i:my name is|this is|you're speaking with|you are speaking with)\s+)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`,
		Replacement: "${1}{{NAME}}",
		Description: "Personal names introduced by a self-identification phrase",
	},
}

// patternGroups maps a group name to the pattern names it enables.
var patternGroups = map[string][]string{
	"pii": {
		"ssn", "card_number", "phone", "email",
		"account_number", "order_id", "address", "name",
	},
	"financial": {"ssn", "card_number", "account_number"},
	"contact":   {"phone", "email", "address", "name"},
}

// compileGroup compiles the patterns of a group, preserving builtin order.
// Invalid patterns are logged and skipped.
func compileGroup(group string) []*CompiledPattern {
	names, ok := patternGroups[group]
	if !ok {
		slog.Error("Unknown redaction pattern group, no patterns enabled", "group", group)
		return nil
	}

	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		enabled[n] = true
	}

	var compiled []*CompiledPattern
	for _, p := range builtinPatterns {
		if !enabled[p.Name] {
			continue
		}
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile redaction pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.Name,
			Regex:       re,
			Replacement: p.Replacement,
			Description: p.Description,
		})
	}
	return compiled
}
