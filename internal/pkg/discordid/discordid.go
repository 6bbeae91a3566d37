// Package discordid validates the snowflake identifiers Discord uses for guilds, channels, roles and users.
package discordid

import (
	"strings"
	"time"

	"invite-role-bridge/internal/pkg/errs"

	"github.com/bwmarrin/snowflake"
)

// discordEpoch is the first second of 2015 in milliseconds.
const discordEpoch int64 = 1420070400000

var ErrInvalidID = errs.New("invalid discord id")

func Parse(raw string) (snowflake.ID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidID
	}
	id, err := snowflake.ParseString(trimmed)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "parse %q", raw), ErrInvalidID)
	}
	if id.Int64() <= 0 {
		return 0, errs.Wrapf(ErrInvalidID, "%q is not positive", raw)
	}
	return id, nil
}

func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}

// CreatedAt extracts the creation time encoded in a Discord snowflake.
func CreatedAt(raw string) (time.Time, error) {
	id, err := Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	ms := (id.Int64() >> 22) + discordEpoch
	return time.UnixMilli(ms).UTC(), nil
}
