package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerAddress(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		for _, tc := range []struct {
			input string
			want  ServerAddress
		}{
			{"", ServerAddress{Host: "127.0.0.1", Port: 27017}},
			{"localhost", ServerAddress{Host: "localhost", Port: 27017}},
			{"DB0.Example.NET:27018", ServerAddress{Host: "db0.example.net", Port: 27018}},
			{":27019", ServerAddress{Host: "127.0.0.1", Port: 27019}},
			{"[::1]:27020", ServerAddress{Host: "::1", Port: 27020}},
			{"[::1]", ServerAddress{Host: "::1", Port: 27017}},
			{"  10.0.0.1:1  ", ServerAddress{Host: "10.0.0.1", Port: 1}},
		} {
			t.Run(tc.input, func(t *testing.T) {
				addr, err := ParseServerAddress(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.want, addr)
			})
		}
	})
	t.Run("ParseErrors", func(t *testing.T) {
		for _, input := range []string{
			"host:port",
			"host:0",
			"host:65536",
			"[::1:27017",
		} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseServerAddress(input)
				assert.Error(t, err)
				assert.Panics(t, func() { MustParseServerAddress(input) })
			})
		}
	})
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "127.0.0.1:27017", ServerAddress{}.String())
		assert.Equal(t, "127.0.0.1:27017", DefaultServerAddress().String())
		assert.Equal(t, "[::1]:27020", MustParseServerAddress("[::1]:27020").String())
		assert.Equal(t, "db0:1", ServerAddress{Host: "db0", Port: 1}.String())
	})
	t.Run("RoundTrip", func(t *testing.T) {
		addr := MustParseServerAddress("db1.example.net:27100")
		assert.Equal(t, addr, MustParseServerAddress(addr.String()))
	})
}

func TestCommand(t *testing.T) {
	server := DefaultServerAddress()

	for _, tc := range []struct {
		name      string
		cmd       Command
		namespace string
		str       string
	}{
		{"Full", Command{Server: server, Database: "admin", Name: "ping"}, "admin.ping", "admin.ping on 127.0.0.1:27017"},
		{"NoDatabase", Command{Server: server, Name: "getLastError"}, "getLastError", "getLastError on 127.0.0.1:27017"},
		{"NoName", Command{Server: server, Database: "test"}, "test", "test on 127.0.0.1:27017"},
		{"Empty", Command{}, "", "127.0.0.1:27017"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.namespace, tc.cmd.Namespace())
			assert.Equal(t, tc.str, tc.cmd.String())
		})
	}
}
