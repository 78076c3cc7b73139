package mailer

import (
	"mime"
	"net/mail"
)

func parseAddress(s string) (string, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}

// mimeWord encodes non-ASCII header text.
func mimeWord(s string) string {
	return mime.QEncoding.Encode("utf-8", s)
}
