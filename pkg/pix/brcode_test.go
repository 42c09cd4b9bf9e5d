package pix_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/pkg/pix"
)

func TestCRC16_CheckValue(t *testing.T) {
	// Valor de verificación estándar de CRC-16/CCITT-FALSE.
	assert.Equal(t, "29B1", pix.CRC16("123456789"))
}

func TestPayload_Structure(t *testing.T) {
	payload, err := pix.Payload(pix.Charge{
		Key:          "admin@pipeday.com",
		MerchantName: "João Silva Consultoria Estratégica",
		MerchantCity: "São Paulo",
		Amount:       decimal.NewFromInt(1500),
		TxID:         "inv-1",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "0014br.gov.bcb.pix0117admin@pipeday.com")
	assert.Contains(t, payload, "54071500.00")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "5925Joao Silva Consultoria Es", "nombre sin acentos y truncado a 25")
	assert.Contains(t, payload, "6009Sao Paulo")
	assert.Contains(t, payload, "62080504inv1")

	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, pix.CRC16(body), crc)
}

func TestPayload_OpenAmountAndDefaults(t *testing.T) {
	payload, err := pix.Payload(pix.Charge{Key: "+5511999999999", MerchantName: "Pipe Day"})
	require.NoError(t, err)

	assert.NotContains(t, payload, "5406")
	assert.Contains(t, payload, "6009SAO PAULO")
	assert.Contains(t, payload, "62070503***")
}

func TestPayload_Validation(t *testing.T) {
	_, err := pix.Payload(pix.Charge{MerchantName: "X"})
	assert.Error(t, err)

	_, err = pix.Payload(pix.Charge{Key: "k"})
	assert.Error(t, err)

	_, err = pix.Payload(pix.Charge{Key: "k", MerchantName: "X", Amount: decimal.NewFromInt(-1)})
	assert.Error(t, err)
}
