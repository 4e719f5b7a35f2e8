// Package model holds the descriptions of the commands whose replies
// the result package classifies.
package model

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tychoish/fun/ft"
)

// Default host and port for servers addressed without them.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 27017
)

// ServerAddress identifies the server that produced a reply.
type ServerAddress struct {
	Host string
	Port int
}

// DefaultServerAddress returns the address of a server on the local
// host and default port.
func DefaultServerAddress() ServerAddress {
	return ServerAddress{Host: DefaultHost, Port: DefaultPort}
}

// ParseServerAddress reads "host", "host:port" and "[ipv6]:port"
// forms. Missing hosts and ports take the defaults.
func ParseServerAddress(addr string) (ServerAddress, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return DefaultServerAddress(), nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		// no port; accept bare hostnames and bracketed ipv6 literals
		host = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
		if strings.HasPrefix(addr, "[") != strings.HasSuffix(addr, "]") || strings.ContainsAny(host, "[]") {
			return ServerAddress{}, errors.Wrapf(err, "invalid server address %q", addr)
		}
		return ServerAddress{Host: strings.ToLower(host), Port: DefaultPort}, nil
	}

	out := ServerAddress{Host: strings.ToLower(host), Port: DefaultPort}
	if out.Host == "" {
		out.Host = DefaultHost
	}

	if port != "" {
		out.Port, err = strconv.Atoi(port)
		if err != nil {
			return ServerAddress{}, errors.Wrapf(err, "invalid port in server address %q", addr)
		}
		if out.Port <= 0 || out.Port > 65535 {
			return ServerAddress{}, errors.Errorf("port %d out of range in server address %q", out.Port, addr)
		}
	}

	return out, nil
}

// MustParseServerAddress is ParseServerAddress for literals known to be
// valid; it panics on error.
func MustParseServerAddress(addr string) ServerAddress {
	return ft.Must(ParseServerAddress(addr))
}

func (a ServerAddress) String() string {
	host := a.Host
	if host == "" {
		host = DefaultHost
	}
	port := a.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Command is the context of a single command: where it was sent and
// what it was. Errors produced for a reply carry the Command that
// produced it.
type Command struct {
	Server   ServerAddress
	Database string
	Name     string
}

// Namespace returns "database.command", or the part that is set.
func (c Command) Namespace() string {
	switch {
	case c.Database == "":
		return c.Name
	case c.Name == "":
		return c.Database
	default:
		return c.Database + "." + c.Name
	}
}

func (c Command) String() string {
	if ns := c.Namespace(); ns != "" {
		return fmt.Sprintf("%s on %s", ns, c.Server)
	}
	return c.Server.String()
}
