package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Mensajes de formulario devueltos en "_form".
const (
	msgNotFound     = "No se encontró el recurso solicitado"
	msgConflict     = "El registro fue modificado en otra sesión. Recargá e intentá de nuevo"
	msgUnauthorized = "Credenciales inválidas"
	msgForbidden    = "No tenés permisos para esta operación"
	msgInternal     = "Ocurrió un error inesperado. Intentá más tarde"
	msgInvalidBody  = "El cuerpo de la solicitud no es válido"
)

// ok responde 200 (o el status indicado) con el resultado exitoso.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.FormError(msgInvalidBody))
}

// fail traduce errores de dominio a status HTTP + resultado fallido.
// Los errores no esperados se registran y se responden con un mensaje genérico.
func fail(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(ve.Fields))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FormError(msgNotFound))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.FormError(msgConflict))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(map[string][]string{"email": {"El email ya está registrado"}}))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.FormError("Ya existe un registro con esos datos"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.FormError(msgUnauthorized))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.FormError(msgForbidden))
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("store_id", GetStoreID(c)).
		Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.FormError(msgInternal))
}
