package validators

import "net/mail"

// IsEmailValid checks address syntax only. Deliverability is the mail
// transport's problem, not ours.
func IsEmailValid(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
