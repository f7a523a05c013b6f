package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher хеширует пароли через bcrypt
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher создает хешер; cost вне допустимого диапазона заменяется на bcrypt.DefaultCost
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashPassword, err)
	}
	return string(hash), nil
}

// Compare возвращает true, если пароль соответствует хешу
func (h *BcryptPasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
