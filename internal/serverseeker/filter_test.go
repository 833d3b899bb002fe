package serverseeker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRange_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input PlayerRange
		want  string
	}{
		{name: "exact", input: Exactly(5), want: `5`},
		{name: "bounded", input: Between(2, 10), want: `[2,10]`},
		{name: "unbounded", input: AtLeast(5), want: `[5,"inf"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.input)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestParsePlayerRange(t *testing.T) {
	tests := []struct {
		input   string
		want    PlayerRange
		wantErr bool
	}{
		{input: "5", want: Exactly(5)},
		{input: " 12 ", want: Exactly(12)},
		{input: "5-10", want: Between(5, 10)},
		{input: "5-", want: AtLeast(5)},
		{input: "5-inf", want: AtLeast(5)},
		{input: "0-INF", want: AtLeast(0)},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "10-5", wantErr: true},
		{input: "5-many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlayerRange(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayerRange_Accessors(t *testing.T) {
	r := Between(3, 8)
	assert.Equal(t, 3, r.Min())
	hi, bounded := r.Max()
	assert.True(t, bounded)
	assert.Equal(t, 8, hi)
	assert.Equal(t, "3-8", r.String())

	r = AtLeast(4)
	_, bounded = r.Max()
	assert.False(t, bounded)
	assert.Equal(t, "4-inf", r.String())

	assert.Equal(t, "7", Exactly(7).String())
}

func TestPlayerRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       PlayerRange
		wantErr bool
	}{
		{name: "exact", r: Exactly(0)},
		{name: "bounded", r: Between(2, 10)},
		{name: "single point", r: Between(4, 4)},
		{name: "unbounded", r: AtLeast(5)},
		{name: "zero value", r: PlayerRange{}, wantErr: true},
		{name: "inverted", r: Between(10, 2), wantErr: true},
		{name: "negative exact", r: Exactly(-1), wantErr: true},
		{name: "negative lower", r: AtLeast(-3), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServerFilter_Validate(t *testing.T) {
	asn := 24940
	unset := PlayerRange{}
	inverted := Between(10, 2)
	valid := Between(1, 5)

	tests := []struct {
		name    string
		filter  *ServerFilter
		wantErr bool
	}{
		{name: "nil filter", filter: nil},
		{name: "empty filter", filter: &ServerFilter{}},
		{name: "country only", filter: &ServerFilter{CountryCode: "DE"}},
		{name: "asn only", filter: &ServerFilter{ASN: &asn}},
		{name: "country and asn", filter: &ServerFilter{CountryCode: "DE", ASN: &asn}, wantErr: true},
		{name: "valid ranges", filter: &ServerFilter{OnlinePlayers: &valid, MaxPlayers: &valid}},
		{name: "unset online range", filter: &ServerFilter{OnlinePlayers: &unset}, wantErr: true},
		{name: "inverted max range", filter: &ServerFilter{MaxPlayers: &inverted}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServerFilter_OmitsAbsentFields(t *testing.T) {
	var zero int64
	cracked := false
	protocol := 765
	online := AtLeast(5)

	filter := &ServerFilter{
		OnlinePlayers: &online,
		Cracked:       &cracked,
		Protocol:      &protocol,
		Software:      SoftwarePaper,
		OnlineAfter:   &zero,
	}

	raw, err := json.Marshal(filter)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"online_players": [5, "inf"],
		"cracked": false,
		"protocol": 765,
		"software": "paper",
		"online_after": 0
	}`, string(raw))
}
