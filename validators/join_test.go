package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstagramURLValidator(t *testing.T) {
	valid := []string{
		"https://instagram.com/teamhumanity",
		"https://www.instagram.com/team.humanity/",
		"https://instagr.am/someone",
		"  https://instagram.com/profile  ",
	}
	for _, u := range valid {
		require.NoError(t, InstagramURLValidator(u), u)
	}

	invalid := []string{
		"https://instagram.com/",
		"https://instagram.com/p/abc123",
		"https://www.instagram.com/reel/xyz",
		"https://instagram.com/reels/xyz",
		"https://instagram.com/tv/xyz",
		"https://example.com/teamhumanity",
		"not a url at all ://",
	}
	for _, u := range invalid {
		require.ErrorIs(t, InstagramURLValidator(u), ErrInstagramURLInvalid, u)
	}
}

func validJoinForm() JoinForm {
	return JoinForm{
		Title:        strings.Repeat("t", titleMin),
		Email:        "Person@Example.com",
		Phone:        "+45 12 34 56 78",
		InstagramURL: "https://instagram.com/person",
		Story:        strings.Repeat("s", storyMin),
	}
}

func TestJoinForm_Validate(t *testing.T) {
	form := validJoinForm()
	require.NoError(t, form.Validate())
	require.Equal(t, "person@example.com", form.Email)

	form = validJoinForm()
	form.Phone = "  "
	require.ErrorIs(t, form.Validate(), ErrMissingFields)

	form = validJoinForm()
	form.Email = "not-an-email"
	require.ErrorIs(t, form.Validate(), ErrEmailInvalid)

	form = validJoinForm()
	form.InstagramURL = "https://instagram.com/p/post"
	require.ErrorIs(t, form.Validate(), ErrInstagramURLInvalid)
}

func TestJoinForm_Bounds(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*JoinForm)
		wantErr error
	}{
		{"title at min", func(f *JoinForm) { f.Title = strings.Repeat("x", titleMin) }, nil},
		{"title below min", func(f *JoinForm) { f.Title = strings.Repeat("x", titleMin-1) }, ErrTitleTooShort},
		{"title at max", func(f *JoinForm) { f.Title = strings.Repeat("x", titleMax) }, nil},
		{"title above max", func(f *JoinForm) { f.Title = strings.Repeat("x", titleMax+1) }, ErrTitleTooLong},
		{"story at min", func(f *JoinForm) { f.Story = strings.Repeat("x", storyMin) }, nil},
		{"story below min", func(f *JoinForm) { f.Story = strings.Repeat("x", storyMin-1) }, ErrStoryTooShort},
		{"story at max", func(f *JoinForm) { f.Story = strings.Repeat("x", storyMax) }, nil},
		{"story above max", func(f *JoinForm) { f.Story = strings.Repeat("x", storyMax+1) }, ErrStoryTooLong},
		// Rune counting, not byte counting.
		{"multibyte title at min", func(f *JoinForm) { f.Title = strings.Repeat("ع", titleMin) }, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validJoinForm()
			tc.mutate(&form)

			err := form.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
