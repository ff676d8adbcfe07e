package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts how the server's listener is opened, with or
// without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the transport server lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
