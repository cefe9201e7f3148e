package usecase

import (
	"strings"
	"unicode"
)

func normalizeCurrency(currency string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(currency))
	if len(c) != 3 {
		return "", false
	}
	for _, r := range c {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return c, true
}

func requireID(id string, err error) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", err
	}
	return id, nil
}
