// Package docs registra la definición swagger de la API (la sirve /swagger/*).
// Mantener alineado con las anotaciones godoc de los handlers.
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
        "/changes": {
            "get": {
                "description": "Feed de mutaciones del provider (insert/update/delete), más recientes primero.",
                "produces": ["application/json"],
                "tags": ["changes"],
                "summary": "Listar cambios recientes",
                "parameters": [
                    {"type": "string", "description": "Prefijo de content URI (ej: content://com.example.android.pets/pets/1)", "name": "uri", "in": "query"},
                    {"type": "string", "description": "Fecha/hora mínima (RFC3339)", "name": "since", "in": "query"},
                    {"type": "integer", "description": "Máximo de cambios a devolver (1-200). Por defecto 50", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/changes.changeResponse"}}},
                    "400": {"description": "Parámetros de filtro inválidos", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/content/{authority}/{path}": {
            "get": {
                "description": "Colección (` + "`" + `/content/com.example.android.pets/pets` + "`" + `) o fila (` + "`" + `.../pets/{id}` + "`" + `). En la colección se puede filtrar y ordenar.",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Consultar mascotas por content URI",
                "parameters": [
                    {"type": "string", "description": "Authority (com.example.android.pets)", "name": "authority", "in": "path", "required": true},
                    {"type": "string", "description": "Path dentro del provider (pets o pets/{id})", "name": "path", "in": "path", "required": true},
                    {"type": "string", "description": "unknown|male|female o 0|1|2", "name": "gender", "in": "query"},
                    {"type": "string", "description": "Raza (case-insensitive)", "name": "breed", "in": "query"},
                    {"type": "string", "description": "Columna: _id, name, breed, gender, weight", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc|desc", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Máximo de filas (1-500). Por defecto 100", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/provider.queryResponse"}},
                    "400": {"description": "parámetros inválidos", "schema": {"type": "string"}},
                    "404": {"description": "unknown uri / pet not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Solo sobre la colección. name es obligatorio; gender debe ser 0, 1 o 2; weight >= 0.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Insertar mascota",
                "parameters": [
                    {"type": "string", "description": "Authority (com.example.android.pets)", "name": "authority", "in": "path", "required": true},
                    {"type": "string", "description": "pets", "name": "path", "in": "path", "required": true},
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/provider.petRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/provider.petResponse"}},
                    "400": {"description": "invalid json / reglas de validación", "schema": {"type": "string"}},
                    "404": {"description": "unknown uri", "schema": {"type": "string"}},
                    "405": {"description": "insert no soportado para la uri", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "DELETE sobre una fila o sobre la colección (con filtros). Devuelve la cantidad de filas borradas.",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Borrar mascotas",
                "parameters": [
                    {"type": "string", "description": "Authority (com.example.android.pets)", "name": "authority", "in": "path", "required": true},
                    {"type": "string", "description": "pets o pets/{id}", "name": "path", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/provider.mutationResponse"}},
                    "400": {"description": "parámetros inválidos", "schema": {"type": "string"}},
                    "404": {"description": "unknown uri", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "description": "PATCH sobre una fila o sobre la colección (con los mismos filtros que la consulta). Solo se validan los campos enviados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Actualizar mascotas",
                "parameters": [
                    {"type": "string", "description": "Authority (com.example.android.pets)", "name": "authority", "in": "path", "required": true},
                    {"type": "string", "description": "pets o pets/{id}", "name": "path", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/provider.patchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/provider.mutationResponse"}},
                    "400": {"description": "invalid json / reglas de validación", "schema": {"type": "string"}},
                    "404": {"description": "unknown uri", "schema": {"type": "string"}}
                }
            }
        },
        "/contract": {
            "get": {
                "description": "Authority, URIs, tabla pets con sus columnas y códigos de género.",
                "produces": ["application/json"],
                "tags": ["contract"],
                "summary": "Describir el contrato de datos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/provider.Description"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Versión del servicio",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.versionResponse"}}
                }
            }
        },
        "/types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Tipo MIME de una content URI",
                "parameters": [
                    {"type": "string", "description": "content URI", "name": "uri", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/provider.typeResponse"}},
                    "404": {"description": "unknown uri", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "changes.changeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "op": {"type": "string", "enum": ["insert", "update", "delete"]},
                "recorded_at": {"type": "string"},
                "rows": {"type": "integer"},
                "uri": {"type": "string"}
            }
        },
        "provider.ColumnDescription": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "name": {"type": "string"},
                "not_null": {"type": "boolean"},
                "primary_key": {"type": "boolean"},
                "type": {"type": "string"}
            }
        },
        "provider.Description": {
            "type": "object",
            "properties": {
                "authority": {"type": "string"},
                "base_uri": {"type": "string"},
                "content_uri": {"type": "string"},
                "genders": {"type": "array", "items": {"$ref": "#/definitions/provider.GenderDescription"}},
                "path": {"type": "string"},
                "table": {"$ref": "#/definitions/provider.TableDescription"},
                "types": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "provider.GenderDescription": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "provider.TableDescription": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/provider.ColumnDescription"}},
                "name": {"type": "string"}
            }
        },
        "provider.mutationResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"},
                "updated": {"type": "integer"},
                "uri": {"type": "string"}
            }
        },
        "provider.patchRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "gender": {"type": "integer", "enum": [0, 1, 2]},
                "name": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "provider.petRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "gender": {"type": "integer", "enum": [0, 1, 2]},
                "name": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "provider.petResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "breed": {"type": "string"},
                "gender": {"type": "integer"},
                "name": {"type": "string"},
                "uri": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "provider.queryResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/provider.petResponse"}},
                "type": {"type": "string"},
                "uri": {"type": "string"}
            }
        },
        "router.versionResponse": {
            "type": "object",
            "properties": {
                "build_date": {"type": "string"},
                "commit": {"type": "string"},
                "go_version": {"type": "string"},
                "name": {"type": "string"},
                "platform": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "provider.typeResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "uri": {"type": "string"}
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
	Title:            "pets-provider API",
	Description:      "Content provider de mascotas sobre HTTP: content URIs, contrato y feed de cambios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
