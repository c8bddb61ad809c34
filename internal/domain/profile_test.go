package domain

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileCompletion(t *testing.T) {
	birthday := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		profile  *Profile
		expected int
	}{
		{"nil profile", nil, 0},
		{"empty profile", &Profile{}, 0},
		{"name only", &Profile{Name: "Ada"}, 20},
		{"whitespace does not count", &Profile{Name: "  ", Bio: "\t"}, 0},
		{"three fields", &Profile{Name: "Ada", Bio: "bio", AvatarURL: "https://img/a.png"}, 60},
		{"complete", &Profile{Name: "Ada", Bio: "bio", AvatarURL: "https://img/a.png", Birthday: &birthday, Gender: "female"}, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ProfileCompletion(tc.profile))
		})
	}
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Unknown User", (*Profile)(nil).DisplayName())
	assert.Equal(t, "Unknown User", (&Profile{Name: " "}).DisplayName())
	assert.Equal(t, "Ada", (&Profile{Name: "Ada"}).DisplayName())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		req     UpdateProfileRequest
		wantErr string
	}{
		{"empty request is valid", UpdateProfileRequest{}, ""},
		{"bio too long", UpdateProfileRequest{Bio: strPtr(string(long))}, "bio length must be at most 500"},
		{"bad avatar", UpdateProfileRequest{AvatarURL: strPtr("not a url")}, "avatar_url must be a valid URL"},
		{"clearing avatar", UpdateProfileRequest{AvatarURL: strPtr("")}, ""},
		{"bad birthday", UpdateProfileRequest{Birthday: strPtr("01/02/1990")}, "birthday must be YYYY-MM-DD"},
		{"good birthday", UpdateProfileRequest{Birthday: strPtr("1990-02-01")}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestUpdateProfileRequest_Apply(t *testing.T) {
	p := &Profile{Name: "Old", Bio: "keep", LocationCity: "Austin"}
	streaming := true
	req := &UpdateProfileRequest{
		Name:               strPtr("  New Name "),
		Birthday:           strPtr("1991-03-04"),
		LocationCity:       strPtr(" Denver "),
		StreamingConnected: &streaming,
	}
	require.NoError(t, req.Validate())

	req.Apply(p)

	assert.Equal(t, "New Name", p.Name)
	assert.Equal(t, "keep", p.Bio)
	assert.Equal(t, "Denver", p.LocationCity)
	assert.True(t, p.StreamingConnected)
	require.NotNil(t, p.Birthday)
	assert.Equal(t, "1991-03-04", p.Birthday.Format("2006-01-02"))

	(&UpdateProfileRequest{Birthday: strPtr("")}).Apply(p)
	assert.Nil(t, p.Birthday)
}

func TestGetProfileRequest_FromURLParams(t *testing.T) {
	var req GetProfileRequest
	assert.Error(t, req.FromURLParams(url.Values{}))
	assert.Error(t, req.FromURLParams(url.Values{"user_id": {"abc"}}))

	id := "6f1c2b8e-3a7d-4e7b-9d8f-2a1b3c4d5e6f"
	require.NoError(t, req.FromURLParams(url.Values{"user_id": {id}}))
	assert.Equal(t, id, req.UserID)
}
