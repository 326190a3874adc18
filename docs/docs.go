// Package docs holds the OpenAPI description served under /swagger/.
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
        "/api/v1/theater/movies/": {
            "get": {
                "description": "Paginated list of movies ordered by id",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List Movies",
                "parameters": [
                    {
                        "minimum": 1,
                        "type": "integer",
                        "default": 1,
                        "description": "Page number (>=1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "maximum": 20,
                        "minimum": 1,
                        "type": "integer",
                        "default": 10,
                        "description": "Number of movies per page",
                        "name": "per_page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpserver.ValidationError"}}
                }
            }
        },
        "/api/v1/theater/movies/{id}/": {
            "get": {
                "description": "Full details of a single movie",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get Movie",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Movie ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpserver.ValidationError"}}
                }
            }
        },
        "/healthcheck": {
            "get": {
                "description": "Check if server is alive and the store answers",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "httpserver.FieldError": {
            "type": "object",
            "properties": {
                "ctx": {"type": "object", "additionalProperties": {}},
                "input": {},
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "httpserver.MovieListResponse": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/httpserver.MovieResponse"}},
                "next_page": {"type": "string"},
                "prev_page": {"type": "string"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "httpserver.MovieResponse": {
            "type": "object",
            "properties": {
                "budget": {"type": "number"},
                "country": {"type": "string"},
                "crew": {"type": "string"},
                "date": {"type": "string", "example": "2023-03-02"},
                "genre": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "orig_lang": {"type": "string"},
                "orig_title": {"type": "string"},
                "overview": {"type": "string"},
                "revenue": {"type": "number"},
                "score": {"type": "number"},
                "status": {"type": "string"}
            }
        },
        "httpserver.ValidationError": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/httpserver.FieldError"}}
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
	Title:            "Movie Catalog API",
	Description:      "Read-only movie catalog with paginated list and detail endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
