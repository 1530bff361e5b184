// Package docs registra la descripción OpenAPI que sirve /swagger.
// Se mantiene a mano junto con las anotaciones de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mis perros",
                "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Registrar perro",
                "responses": {"201": {"description": "Created"}, "400": {"description": "invalid json"}}
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Ver perfil de un perro",
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}, "404": {"description": "pet not found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Editar perfil de un perro",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "invalid json / birth_date inválido"}, "403": {"description": "forbidden"}, "404": {"description": "pet not found"}}
            }
        },
        "/pets/{petID}/checkins": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checkins"],
                "summary": "Listar check-ins",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkins"],
                "summary": "Registrar check-in diario",
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "invalid input"}, "409": {"description": "check-in already exists for this date"}}
            }
        },
        "/pets/{petID}/checkins/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checkins"],
                "summary": "Ver check-in de una fecha",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "check-in not found"}}
            }
        },
        "/pets/{petID}/checkins/{date}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checkins"],
                "summary": "Resumen del día",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "check-in not found"}}
            }
        },
        "/pets/{petID}/consistency": {
            "get": {
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Score de consistencia",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets/{petID}/patterns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Patrones detectados",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets/{petID}/alerts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Listar alertas",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "invalid status"}}
            }
        },
        "/emergency/detect": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Detectar lenguaje de emergencia",
                "responses": {"200": {"description": "OK"}, "400": {"description": "invalid json / text too long"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Health Journal API",
	Description:      "Check-ins diarios de salud canina: resumen del día, consistencia, patrones y detección de emergencias.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
