package timecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	cases := map[string]string{
		"2000":       "20:00+0000",
		"08:30":      "08:30+0000",
		"0830":       "08:30+0000",
		"":           "+0000",
		"20:00+0000": "20:00+0000",
	}
	for in, want := range cases {
		assert.Equal(t, want, Encode(in), "Encode(%q)", in)
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "", Decode(""))
	assert.Equal(t, "08:00", Decode("08:00+0000"))
	assert.Equal(t, "08:00", Decode("0800+0000"))
	assert.Equal(t, "08:00", Decode("08:00"))
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{"0000", "0800", "1230", "2000", "2359"} {
		want := in[:2] + ":" + in[2:]
		assert.Equal(t, want, Decode(Encode(in)), "round trip %q", in)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	once := Encode("2000")
	assert.Equal(t, once, Encode(once))
}
