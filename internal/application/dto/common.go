package dto

// Result respuesta uniforme de la API: éxito con datos o fracaso con errores
// por campo. Los errores que no corresponden a un campo van en "_form".
type Result struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK resultado exitoso.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail resultado fallido con errores por campo.
func Fail(errs map[string][]string) Result {
	return Result{Success: false, Errors: errs}
}

// FormError resultado fallido con un único mensaje de formulario.
func FormError(msg string) Result {
	return Fail(map[string][]string{"_form": {msg}})
}

// ErrorResponse cuerpo de error HTTP (middlewares de auth).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
