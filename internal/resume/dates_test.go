package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "Jan 2021", FormatDate("2021-01-01"))
}

func TestFormatDate_YearMonth(t *testing.T) {
	assert.Equal(t, "May 2019", FormatDate("2019-05"))
}

func TestFormatDate_YearOnly(t *testing.T) {
	assert.Equal(t, "Jan 2019", FormatDate("2019"))
}

func TestFormatDate_Present(t *testing.T) {
	assert.Equal(t, "Present", FormatDate(PresentSentinel))
}

func TestFormatDate_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDate_GarbagePassesThrough(t *testing.T) {
	assert.Equal(t, "sometime soon", FormatDate("sometime soon"))
}

func TestFormatDateUpper_FullDate(t *testing.T) {
	assert.Equal(t, "MAY 2019", FormatDateUpper("2019-05-01"))
}

func TestFormatDateUpper_Present(t *testing.T) {
	assert.Equal(t, "PRESENT", FormatDateUpper(PresentSentinel))
}

func TestFormatDateUpper_GarbageUppercased(t *testing.T) {
	assert.Equal(t, "SOMETIME SOON", FormatDateUpper("sometime soon"))
}

func TestFormatDateUpper_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDateUpper(""))
}
