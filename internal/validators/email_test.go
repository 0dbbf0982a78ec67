package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailSyntaxValid(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@sub.example.com.ar"}
	invalid := []string{"", "ana", "ana@", "@example.com", "Ana <ana@example.com>", "ana@localhost"}

	for _, e := range valid {
		assert.True(t, IsEmailSyntaxValid(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsEmailSyntaxValid(e), e)
	}
}

func TestIsEmailDomainValid_RejectsMissingDomain(t *testing.T) {
	assert.False(t, IsEmailDomainValid("ana"))
	assert.False(t, IsEmailDomainValid("ana@"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
