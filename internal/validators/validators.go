package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

var (
	phoneDigits = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	pinDigits   = regexp.MustCompile(`^[0-9]{4,6}$`)

	registerOnce sync.Once
	registerErr  error
)

// RegisterBindings adds the salon tags to gin's validator:
//
//	clock  "HH:mm" 24h, zero padded
//	date   "YYYY-MM-DD"
//	phone  10 to 15 digits, optional leading +, spaces/dashes/parens ignored
//	pin    4 to 6 digits
func RegisterBindings() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

func Register(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"clock": validateClock,
		"date":  validateDate,
		"phone": validatePhone,
		"pin":   validatePIN,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClock(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneDigits.MatchString(NormalizePhone(fl.Field().String()))
}

func validatePIN(fl validator.FieldLevel) bool {
	return pinDigits.MatchString(fl.Field().String())
}

// NormalizePhone strips formatting so "(11) 99999-0000" and "11999990000" match.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens binding errors into one entry per field.
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "clock":
		return "horário deve estar no formato HH:mm"
	case "date":
		return "data deve estar no formato AAAA-MM-DD"
	case "phone":
		return "telefone inválido"
	case "pin":
		return "PIN deve ter de 4 a 6 dígitos"
	case "email":
		return "e-mail inválido"
	}
	return fmt.Sprintf("falhou na regra %q", fe.Tag())
}
