// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, value types, regex patterns, allowed values and
//              custom checks.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-10-12 v0.2.0: OneOf rule, results convert to structured errors,
//                       removed numeric bounds and struct binding
// - 2025-10-19 v0.2.1: Check rule for values validated by other packages

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string" or "map"
	Pattern  string   // Regex pattern for string values
	OneOf    []string // Allowed string values, compared case-insensitively

	// Check runs last on a present value of the right type
	Check func(value interface{}) error
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise a CodeInvalidConfig error
// listing every failure.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return dherror.New("invalid configuration").
		WithCode(dherror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", strings.Join(r.Errors, "; "))
}

// Validate validates the configuration against the provided rules.
// Environment overrides take part in the check.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if envValue := c.getEnvValue(key); envValue != "" {
		value = envValue
		if rule.Type == "map" {
			value = map[string]interface{}{}
		}
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		if err := validateOneOf(key, value, rule.OneOf); err != nil {
			return err
		}
	}

	if rule.Check != nil {
		if err := rule.Check(value); err != nil {
			return fmt.Errorf("field '%s': %w", key, err)
		}
	}

	return nil
}

// validateType validates the type of a configuration value
func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "map":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("field '%s' must be a table, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}

// validatePattern validates string values against regex patterns
func validatePattern(key string, value interface{}, pattern string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}

	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}

	return nil
}

// validateOneOf checks a string value against a list of allowed values
func validateOneOf(key string, value interface{}, allowed []string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be one of %s", key, strings.Join(allowed, ", "))
	}

	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(strValue), a) {
			return nil
		}
	}
	return fmt.Errorf("field '%s' value '%s' must be one of %s", key, strValue, strings.Join(allowed, ", "))
}
