package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type DonationLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DonationLinks is stored as a JSON column because links carry both a
// label and a URL, which a flat separator can't hold safely
type DonationLinks []DonationLink

// Value implements the driver.Valuer interface.
func (d DonationLinks) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal DonationLinks, %w", err)
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (d *DonationLinks) Scan(value interface{}) error {
	if value == nil {
		*d = DonationLinks{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan DonationLinks, %v", value)
		}

		str = string(b)
	}

	if str == "" {
		*d = DonationLinks{}
		return nil
	}

	return json.Unmarshal([]byte(str), d)
}
