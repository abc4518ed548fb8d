package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name" msgpack:"name"`
	Count int    `json:"count" msgpack:"count"`
}

// TestNewSerializer 测试序列化器创建
func TestNewSerializer(t *testing.T) {
	cases := []struct {
		typ     string
		wantErr bool
	}{
		{"json", false},
		{"", false},
		{"msgpack", false},
		{"xml", true},
	}

	for _, c := range cases {
		s, err := New(c.typ)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedSerializer, "type %q", c.typ)
		} else {
			require.NoError(t, err, "type %q", c.typ)
			assert.NotNil(t, s)
		}
	}
}

// TestJSONRoundTrip 测试 JSON 序列化往返
func TestJSONRoundTrip(t *testing.T) {
	s, err := New("json")
	require.NoError(t, err)

	in := payload{Name: "facade restoration", Count: 3}
	data, err := s.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// TestMessagePackRoundTrip 测试 MessagePack 序列化往返
func TestMessagePackRoundTrip(t *testing.T) {
	s, err := New("msgpack")
	require.NoError(t, err)

	in := payload{Name: "roof renovation", Count: 7}
	data, err := s.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
