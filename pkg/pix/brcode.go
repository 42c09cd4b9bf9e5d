// Package pix: payload "copia e cola" (BR Code) para cobros Pix estáticos.
// Formato EMV MPM del Banco Central do Brasil: campos ID(2) + LEN(2) + VALOR y un
// CRC16-CCITT (polinomio 0x1021, inicial 0xFFFF) al final.
package pix

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	gui             = "br.gov.bcb.pix"
	maxNameLen      = 25
	maxCityLen      = 15
	maxTxIDLen      = 25
	defaultCity     = "SAO PAULO"
	emptyTxID       = "***"
	currencyBRL     = "986"
	countryCode     = "BR"
	categoryDefault = "0000"
)

// Charge datos del cobro.
type Charge struct {
	Key          string          // chave Pix del receptor (email, CPF/CNPJ, teléfono o aleatoria)
	MerchantName string          // nombre del receptor
	MerchantCity string          // ciudad; vacío = SAO PAULO
	Amount       decimal.Decimal // cero = monto abierto
	TxID         string          // identificador; se filtra a alfanumérico
}

// Payload arma el BR Code. Devuelve error si falta la chave o el nombre.
func Payload(c Charge) (string, error) {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		return "", fmt.Errorf("pix: la chave es obligatoria")
	}
	name := truncate(ascii(c.MerchantName), maxNameLen)
	if name == "" {
		return "", fmt.Errorf("pix: el nombre del receptor es obligatorio")
	}
	city := truncate(ascii(c.MerchantCity), maxCityLen)
	if city == "" {
		city = defaultCity
	}
	if c.Amount.IsNegative() {
		return "", fmt.Errorf("pix: monto negativo")
	}

	var b strings.Builder
	b.WriteString(field("00", "01"))
	b.WriteString(field("26", field("00", gui)+field("01", key)))
	b.WriteString(field("52", categoryDefault))
	b.WriteString(field("53", currencyBRL))
	if c.Amount.IsPositive() {
		b.WriteString(field("54", c.Amount.StringFixed(2)))
	}
	b.WriteString(field("58", countryCode))
	b.WriteString(field("59", name))
	b.WriteString(field("60", city))
	b.WriteString(field("62", field("05", txID(c.TxID))))
	b.WriteString("6304")

	payload := b.String()
	return payload + CRC16(payload), nil
}

// CRC16 CRC16-CCITT-FALSE en 4 dígitos hexadecimales en mayúsculas.
func CRC16(s string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// ascii quita acentos (João → Joao) y descarta lo que no sea ASCII imprimible.
func ascii(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return -1
		}
		return r
	}, out)
}

func txID(s string) string {
	id := strings.Map(func(r rune) rune {
		if r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
	id = truncate(id, maxTxIDLen)
	if id == "" {
		return emptyTxID
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
