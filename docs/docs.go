// Package docs registra la descripción OpenAPI de la API de abrigos para /swagger/*.
// Se mantiene en el formato que genera `swag init` (ver @Summary en los handlers).
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
        "/shelters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shelters"],
                "summary": "Lista os abrigos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/shelters.shelterResponse"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shelters"],
                "summary": "Cadastra um novo abrigo",
                "parameters": [
                    {
                        "description": "abrigo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/shelters.createShelterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/shelters.shelterResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/shelters.errorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/shelters.errorResponse"}
                    }
                }
            }
        },
        "/shelters/{shelterID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shelters"],
                "summary": "Detalhe de um abrigo",
                "parameters": [
                    {
                        "type": "string",
                        "description": "id do abrigo",
                        "name": "shelterID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/shelters.shelterResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/shelters.errorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "shelters.createShelterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "shelteredPeople": {"type": "integer", "minimum": 0},
                "capacity": {"type": "integer", "minimum": 1},
                "verified": {"type": "boolean"},
                "petFriendly": {"type": "boolean"},
                "contact": {"type": "string"},
                "pix": {"type": "string"}
            }
        },
        "shelters.shelterResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "shelteredPeople": {"type": "integer"},
                "capacity": {"type": "integer"},
                "verified": {"type": "boolean"},
                "petFriendly": {"type": "boolean"},
                "contact": {"type": "string"},
                "pix": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "shelters.errorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "fields": {
                    "type": "object",
                    "additionalProperties": {"type": "string"}
                }
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
	Title:            "shelter-registry API",
	Description:      "Cadastro e consulta de abrigos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
