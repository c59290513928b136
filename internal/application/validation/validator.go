// Package validation aplica las reglas `validate` de los DTOs y traduce las
// fallas a errores por campo con la ruta JSON (ej. "items[0].quantity").
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// Validator envoltorio sobre validator.Validate; seguro para uso concurrente.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con nombres de campo JSON y soporte para
// decimal.Decimal en reglas numéricas (gte, gt, lte...).
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("singleline", singleLine)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// singleLine rechaza saltos de línea y otros caracteres de control.
func singleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}

// Struct valida s. Devuelve nil o un *domain.ValidationError.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.FieldError(domain.FormField, "Solicitud inválida")
	}
	out := domain.NewValidationError()
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), message(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateSaleRequest.items[0].quantity" → "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(e validator.FieldError) string {
	isString := e.Kind() == reflect.String
	switch e.Tag() {
	case "required", "required_if":
		return "Este campo es obligatorio"
	case "singleline":
		return "No puede contener saltos de línea"
	case "email":
		return "Email inválido"
	case "uuid":
		return "Identificador inválido"
	case "oneof":
		return "Debe ser uno de: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "min":
		if isString {
			return "Debe tener al menos " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "Debe tener al menos " + e.Param() + " elemento(s)"
		}
		return "Debe ser al menos " + e.Param()
	case "max":
		if isString {
			return "Debe tener como máximo " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "Debe tener como máximo " + e.Param() + " elementos"
		}
		return "Debe ser como máximo " + e.Param()
	case "gt":
		return "Debe ser mayor que " + e.Param()
	case "gte":
		return "Debe ser mayor o igual a " + e.Param()
	case "lt":
		return "Debe ser menor que " + e.Param()
	case "lte":
		return "Debe ser menor o igual a " + e.Param()
	default:
		return "Valor inválido"
	}
}
