package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/logger"
)

func TestLogger_ComponentYNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info").Component("sales")

	log.Debug().Msg("no debe salir")
	log.Info().Str("store_id", "s1").Msg("venta creada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "sales", line["component"])
	assert.Equal(t, "s1", line["store_id"])
	assert.Equal(t, "venta creada", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestLogger_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "verbose")
	log.Debug().Msg("x")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("y")
	assert.NotZero(t, buf.Len())
}

func TestLogger_Nop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("descartado") })
}
