package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlockPlainJSON(t *testing.T) {
	input := `{"score": 80}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlockJSONFence(t *testing.T) {
	input := "```json\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlockGenericFence(t *testing.T) {
	input := "```\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlockSurroundingWhitespace(t *testing.T) {
	input := "  \n```json\n[1, 2]\n```\n  "
	assert.Equal(t, "[1, 2]", CleanJSONBlock(input))
}

func TestCleanJSONBlockBraceOnFenceLine(t *testing.T) {
	// A brace right after the fence is content, not a language identifier.
	input := "```{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}
