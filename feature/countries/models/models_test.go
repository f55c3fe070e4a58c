package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "aland", NormalizeName("  Aland "))
	assert.Equal(t, "united states of america", NormalizeName("United States of America"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "EUR", NormalizeCurrency(" eur"))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "countries", Country{}.TableName())
	assert.Equal(t, "refresh_status", RefreshStatus{}.TableName())
	assert.Len(t, All(), 2)
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, ValidCurrency("EUR"))
	assert.False(t, ValidCurrency("eur"))
	assert.False(t, ValidCurrency("(none)"))
	assert.False(t, ValidCurrency(""))
}
