package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteamID(t *testing.T) {
	sid := NewSteamID(22202, 1, AccountTypeIndividual, UniversePublic)

	assert.Equal(t, testSteamID, sid)
	assert.Equal(t, uint32(22202), sid.AccountID())
	assert.Equal(t, uint32(1), sid.Instance())
	assert.Equal(t, uint32(AccountTypeIndividual), sid.AccountType())
	assert.Equal(t, uint32(UniversePublic), sid.Universe())
	assert.True(t, sid.IsIndividual())
	assert.Equal(t, "76561197960287930", sid.ToString())

	clan := NewSteamID(1, 0, AccountTypeClan, UniversePublic)
	assert.False(t, clan.IsIndividual())

	parsed, err := ParseSteamID("76561197960287930")
	require.NoError(t, err)
	assert.Equal(t, sid, parsed)

	_, err = ParseSteamID("-1")
	assert.Error(t, err)
}

func TestParseAppID(t *testing.T) {
	tests := []struct {
		in      string
		want    AppID
		wantErr bool
	}{
		{in: "480", want: 480},
		{in: " 730\n", want: 730},
		{in: "0", want: 0},
		{in: "4294967295", want: 4294967295},
		{in: "4294967296", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAppID(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, AppIDInvalidError, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "480", AppID(480).ToString())
}
