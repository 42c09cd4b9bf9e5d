// Package docs registra la especificación OpenAPI de la API en swag y la expone
// a la UI de /docs.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo metadatos de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pipe Day API",
	Description:      "CRM y facturación: clientes, servicios, embudo de ventas y faturas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// FilePath ruta del JSON servido por la UI de Swagger.
const FilePath = "./docs/swagger.json"

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
