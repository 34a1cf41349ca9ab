package ai

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed prompts.json
var promptData []byte

var (
	promptsOnce sync.Once
	promptTable map[string]string
	promptsErr  error
)

// promptFor retrieves an embedded prompt template by key.
func promptFor(key string) (string, error) {
	promptsOnce.Do(func() {
		promptsErr = json.Unmarshal(promptData, &promptTable)
	})
	if promptsErr != nil {
		return "", fmt.Errorf("failed to parse embedded prompts: %w", promptsErr)
	}
	prompt, exists := promptTable[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// formatPrompt replaces template placeholders in the form {{.Key}} with
// values from data.
func formatPrompt(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
