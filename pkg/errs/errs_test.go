package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAreDisjoint(t *testing.T) {
	parse := Parse("bad header")
	validation := Validation("no wavelengths in range")
	domain := Domain("insufficient valid points")
	fit := Fit("did not converge")

	assert.True(t, IsParse(parse))
	assert.False(t, IsParse(validation))

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(domain))

	assert.True(t, IsDomain(domain))
	assert.False(t, IsDomain(fit))

	assert.True(t, IsFit(fit))
	assert.False(t, IsFit(parse))
}

func TestMessagesFormat(t *testing.T) {
	err := Parse("row %d column %d is not numeric: %q", 3, 2, "x")
	assert.EqualError(t, err, `row 3 column 2 is not numeric: "x"`)
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while fitting: %w", Domain("insufficient valid points"))
	assert.True(t, IsDomain(wrapped))
	assert.False(t, IsFit(wrapped))
}
