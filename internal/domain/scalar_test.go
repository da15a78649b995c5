package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDVariants(t *testing.T) {
	cases := []struct {
		in   string
		want FlexID
	}{
		{`12`, 12},
		{`"12"`, 12},
		{`"12.0"`, 12},
		{`null`, 0},
		{`""`, 0},
		{`0`, 0},
	}
	for _, tc := range cases {
		var id FlexID
		require.NoError(t, json.Unmarshal([]byte(tc.in), &id), tc.in)
		assert.Equal(t, tc.want, id, tc.in)
	}

	var id FlexID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
}

func TestFlexIDValid(t *testing.T) {
	assert.False(t, FlexID(0).Valid())
	assert.False(t, FlexID(-1).Valid())
	assert.True(t, FlexID(1).Valid())
}

func TestFlexIDMarshal(t *testing.T) {
	b, err := json.Marshal(FlexID(7))
	require.NoError(t, err)
	assert.Equal(t, `7`, string(b))

	// absent ids serialize as null, not 0
	b, err = json.Marshal(FlexID(0))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestFlexBoolVariants(t *testing.T) {
	truthy := []string{`true`, `1`, `"1"`, `"true"`, `"yes"`}
	for _, in := range truthy {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		assert.True(t, b.Bool(), in)
	}
	falsy := []string{`false`, `0`, `"0"`, `"false"`, `"no"`, `null`, `""`}
	for _, in := range falsy {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		assert.False(t, b.Bool(), in)
	}

	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &b))
}

func TestSectionParsing(t *testing.T) {
	assert.Equal(t, SectionSunglasses, ParseSection("sunglasses"))
	assert.Equal(t, SectionAll, ParseSection(""))
	assert.Equal(t, SectionAll, ParseSection("bogus"))
	for _, s := range Sections() {
		assert.True(t, s.Valid(), string(s))
	}
}
