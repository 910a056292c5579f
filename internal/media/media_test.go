package media

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		in      string
		want    EntityType
		wantErr bool
	}{
		{"post", EntityPost, false},
		{"log", EntityLog, false},
		{"project", EntityProject, false},
		{"", EntityPost, false},
		{"  Post  ", EntityPost, false},
		{"PROJECT", EntityProject, false},
		{"article", "", true},
		{"posts", "", true},
	}

	for _, tt := range tests {
		got, err := ParseEntityType(tt.in)
		if tt.wantErr {
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTypeFromContentType(t *testing.T) {
	assert.Equal(t, TypeImage, TypeFromContentType("image/jpeg"))
	assert.Equal(t, TypeImage, TypeFromContentType("image/webp"))
	assert.Equal(t, TypeVideo, TypeFromContentType("video/mp4"))
	assert.Equal(t, TypeVideo, TypeFromContentType("video/quicktime"))
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     string
	}{
		{"jpeg ok", "image/jpeg", 2_000_000, ""},
		{"image at limit", "image/png", 10 << 20, ""},
		{"image one over", "image/png", 10<<20 + 1, "File too large. Maximum size is 10MB."},
		{"video at limit", "video/mp4", 100 << 20, ""},
		{"video one over", "video/quicktime", 100<<20 + 1, "File too large. Maximum size is 100MB."},
		{"pdf rejected", "application/pdf", 1024, "Invalid file type. Only images and videos are allowed."},
		{"svg rejected", "image/svg+xml", 1024, "Invalid file type. Only images and videos are allowed."},
		{"empty type rejected", "", 1024, "Invalid file type. Only images and videos are allowed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.contentType, tt.size)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Error())
		})
	}
}

func TestUniqueFileName(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+-[a-f0-9]{32}\.jpg$`)

	name := UniqueFileName("photo.JPG", "bin")
	assert.Regexp(t, pattern, name)

	// No extension falls back to the default.
	assert.Regexp(t, `\.pdf$`, UniqueFileName("resume", "pdf"))

	// Two names generated back to back never collide.
	assert.NotEqual(t, UniqueFileName("a.png", "bin"), UniqueFileName("a.png", "bin"))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "uploads/posts/images/f.jpg", buildKey(EntityPost, TypeImage, "f.jpg"))
	assert.Equal(t, "uploads/logs/videos/f.mp4", buildKey(EntityLog, TypeVideo, "f.mp4"))
	assert.Equal(t, "uploads/projects/images/f.png", buildKey(EntityProject, TypeImage, "f.png"))
}
