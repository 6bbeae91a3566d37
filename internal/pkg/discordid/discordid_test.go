//go:build unit

package discordid_test

import (
	"testing"
	"time"

	"invite-role-bridge/internal/pkg/discordid"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "guild id", raw: "1100000000000000001"},
		{name: "surrounding whitespace", raw: " 175928847299117063 "},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := discordid.Validate(tt.raw)
			if tt.wantErr {
				assert.True(t, errs.Is(err, discordid.ErrInvalidID), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreatedAt(t *testing.T) {
	// example id from the Discord developer docs
	got, err := discordid.CreatedAt("175928847299117063")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 4, 30, 11, 18, 25, 796000000, time.UTC), got)

	_, err = discordid.CreatedAt("nope")
	assert.True(t, errs.Is(err, discordid.ErrInvalidID))
}
