package filings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilingRequirement_KnownState(t *testing.T) {
	t.Parallel()

	req, ok := FilingRequirement("Delaware", EntityLLC)

	assert.True(t, ok)
	assert.True(t, req.Required)
	assert.Equal(t, FrequencyAnnual, req.Frequency)
}

func TestFilingRequirement_BiennialState(t *testing.T) {
	t.Parallel()

	req, ok := FilingRequirement("California", EntityLLC)

	assert.True(t, ok)
	assert.True(t, req.Required)
	assert.Equal(t, FrequencyBiennial, req.Frequency)
}

func TestFilingRequirement_NotRequired(t *testing.T) {
	t.Parallel()

	req, ok := FilingRequirement("Arizona", EntityLLC)

	assert.True(t, ok)
	assert.False(t, req.Required)
}

func TestFilingRequirement_UnknownState(t *testing.T) {
	t.Parallel()

	_, ok := FilingRequirement("Atlantis", EntityLLC)
	assert.False(t, ok)
}

func TestFilingRequirement_UnknownEntityType(t *testing.T) {
	t.Parallel()

	_, ok := FilingRequirement("Delaware", "Sole Proprietorship")
	assert.False(t, ok)
}

func TestIsFilingRequired_FailsClosed(t *testing.T) {
	t.Parallel()

	assert.False(t, IsFilingRequired("Atlantis", EntityLLC))
	assert.False(t, IsFilingRequired("Delaware", "Sole Proprietorship"))
	assert.True(t, IsFilingRequired("Delaware", EntityCorporation))
}

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version())
}
