package validators

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	titleMin = 30
	titleMax = 120
	storyMin = 300
	storyMax = 12000
)

var (
	ErrInstagramURLInvalid = errors.New("invalid Instagram profile URL")

	ErrTitleTooShort = fmt.Errorf("title is too short (min %d)", titleMin)
	ErrTitleTooLong  = fmt.Errorf("title is too long (max %d)", titleMax)
	ErrStoryTooShort = fmt.Errorf("story is too short (min %d)", storyMin)
	ErrStoryTooLong  = fmt.Errorf("story is too long (max %d)", storyMax)
)

type JoinForm struct {
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	InstagramURL string `json:"instagram_url"`
	Story        string `json:"story"`
	ExtraInfo    string `json:"extra_info"`
}

func (f *JoinForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.InstagramURL = strings.TrimSpace(f.InstagramURL)
	f.Story = strings.TrimSpace(f.Story)
	f.ExtraInfo = strings.TrimSpace(f.ExtraInfo)

	if f.Title == "" || f.Email == "" || f.Phone == "" || f.InstagramURL == "" || f.Story == "" {
		return ErrMissingFields
	}

	if err := EmailValidator(f.Email); err != nil {
		return err
	}

	if err := InstagramURLValidator(f.InstagramURL); err != nil {
		return err
	}

	if utf8.RuneCountInString(f.Title) < titleMin {
		return ErrTitleTooShort
	}
	if utf8.RuneCountInString(f.Title) > titleMax {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(f.Story) < storyMin {
		return ErrStoryTooShort
	}
	if utf8.RuneCountInString(f.Story) > storyMax {
		return ErrStoryTooLong
	}

	return nil
}

// InstagramURLValidator accepts profile URLs only. Post, reel and tv
// links point at content instead of an account and are rejected.
func InstagramURLValidator(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return ErrInstagramURLInvalid
	}

	host := strings.ToLower(u.Hostname())
	if !strings.Contains(host, "instagram.com") && !strings.Contains(host, "instagr.am") {
		return ErrInstagramURLInvalid
	}

	var parts []string
	for _, p := range strings.Split(u.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ErrInstagramURLInvalid
	}

	switch strings.ToLower(parts[0]) {
	case "p", "reel", "reels", "tv":
		return ErrInstagramURLInvalid
	}

	return nil
}
