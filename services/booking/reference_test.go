package booking

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ANG-\d{4}-\d{4}$`)
	for i := 0; i < 1000; i++ {
		ref := GenerateReference()
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateReferenceUsesCurrentYear(t *testing.T) {
	year := fmt.Sprintf("ANG-%d-", time.Now().Year())
	for i := 0; i < 100; i++ {
		assert.Contains(t, GenerateReference(), year)
	}
}

func TestGenerateReferenceZeroPadsSuffix(t *testing.T) {
	// The suffix is always exactly four digits, even for small draws.
	for i := 0; i < 1000; i++ {
		ref := GenerateReference()
		assert.Len(t, ref, len("ANG-2025-0000"))
	}
}
