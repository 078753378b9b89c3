package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"my-ext", true},
		{"extension", true},
		{"my-ext-1", false},
		{"My-Ext", false},
		{"my ext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "My Extension", Capitalize("my-extension"))
	assert.Equal(t, "Ext", Capitalize("ext"))
	assert.Equal(t, "A B C", Capitalize("a-b-c"))
}

func TestValidateDisplayName(t *testing.T) {
	validate := ValidateDisplayName("my-ext")

	assert.NoError(t, validate("My Ext"))
	assert.ErrorContains(t, validate(""), "required")
	assert.ErrorContains(t, validate("my ext"), `"My Ext" is recommended`)
}

func TestValidateNonEmpty(t *testing.T) {
	validate := ValidateNonEmpty("description")

	assert.NoError(t, validate("something"))
	assert.ErrorContains(t, validate("   "), "description is required")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b, c"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,b"))
	assert.Equal(t, []string{"one two", "three"}, SplitList("one two , three"))
	assert.Nil(t, SplitList("   "))
}

func TestValidateKeywords(t *testing.T) {
	assert.NoError(t, ValidateKeywords("a, b, c"))
	assert.NoError(t, ValidateKeywords("a, b, c, d, e"))
	assert.ErrorContains(t, ValidateKeywords("a, b, c, d, e, f"), "at most 5")
	assert.ErrorContains(t, ValidateKeywords(""), "at least one")
}

func TestValidateCategories(t *testing.T) {
	assert.NoError(t, ValidateCategories("Snippets, Other"))
	assert.NoError(t, ValidateCategories("Programming Languages"))

	err := ValidateCategories("Snippets, Gadgets, Widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid categories: Gadgets, Widgets")
	assert.Contains(t, err.Error(), "Programming Languages")
	assert.Contains(t, err.Error(), "Other")

	assert.ErrorContains(t, ValidateCategories(""), "at least one")
}
