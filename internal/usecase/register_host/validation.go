package register_host

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var validate = validator.New()

// validateRequest нормализует и валидирует данные регистрации
func validateRequest(req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, domain.MinPasswordLength)
	}

	return nil
}
