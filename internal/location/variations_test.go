package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain name has no variations",
			input: "Paris",
			want:  nil,
		},
		{
			name:  "untrimmed name yields the trimmed form",
			input: "  Paris  ",
			want:  []string{"Paris"},
		},
		{
			name:  "hyphenated name splits and rejoins",
			input: "Dallas-Fort Worth",
			want:  []string{"Dallas", "Fort Worth", "Dallas Fort Worth"},
		},
		{
			name:  "slash-delimited name",
			input: "Minneapolis/St Paul",
			want:  []string{"Minneapolis", "St Paul", "Minneapolis St Paul", "Minneapolis-St Paul"},
		},
		{
			name:  "comma-delimited name",
			input: "Paris,France",
			want:  []string{"Paris", "France", "Paris France", "Paris-France"},
		},
		{
			name:  "duplicate segments collapse",
			input: "York-York",
			want:  []string{"York", "York York"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variations(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, tt.input, "the original must never be retried")
		})
	}
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "paris", CacheKey("Paris, France"))
	assert.Equal(t, "paris", CacheKey("paris"))
	assert.Equal(t, "paris", CacheKey("  PARIS  "))
	assert.Equal(t, "new york", CacheKey("New York, NY, USA"))
	assert.Equal(t, "", CacheKey("   "))
}
