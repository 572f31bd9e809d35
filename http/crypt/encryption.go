// Package crypt names the encryption a connection arrived over. The token is
// purely informational: the record layer is terminated by crypto/tls before
// any of our code sees the bytes.
package crypt

type Encryption uint8

const (
	Plain Encryption = iota
	SSL
	TLSv10
	TLSv11
	TLSv12
	TLSv13
	Unknown
)

// IsSafe reports whether the connection went through any encryption at all.
func (e Encryption) IsSafe() bool {
	return e != Plain
}

func (e Encryption) String() string {
	lut := [...]string{
		Plain:   "plain",
		SSL:     "ssl",
		TLSv10:  "tls 1.0",
		TLSv11:  "tls 1.1",
		TLSv12:  "tls 1.2",
		TLSv13:  "tls 1.3",
		Unknown: "unknown",
	}

	if int(e) >= len(lut) {
		return "unknown"
	}

	return lut[e]
}
