package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
)

// Validator checks structs tagged with `validate`.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that also understands the "pubkey" tag (a base58
// Solana address). Field names in messages come from the mapstructure or
// json tag when present.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"mapstructure", "json"} {
			if name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("pubkey", func(fl validator.FieldLevel) bool {
		_, err := solana.PublicKeyFromBase58(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Struct validates s and returns a readable error for the first violation.
func (vd *Validator) Struct(s any) error {
	err := vd.v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	return errors.New(Describe(ve[0]))
}

// Describe renders one field violation.
func Describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of (%s), got %v", fe.Field(), fe.Param(), fe.Value())
	case "pubkey":
		return fmt.Sprintf("%s is not a valid base58 address: %v", fe.Field(), fe.Value())
	case "url", "http_url":
		return fmt.Sprintf("%s is not a valid URL: %v", fe.Field(), fe.Value())
	default:
		msg := fmt.Sprintf("%s failed %s", fe.Field(), fe.ActualTag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return msg
	}
}
