// Package docs registers the OpenAPI document served at /swagger.
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
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.SignUpRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Email already registered", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in and receive a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.SignInRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Wrong email or password", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/update-password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Change the password of the signed in user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.UpdatePasswordRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/info": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Profile of the signed in user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/favorites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "List favorites",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/addfavorites": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "Add a favorite",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/favorites.AddFavoriteRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Already a favorite", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/favorites/{mediaId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "Remove a favorite",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "mediaId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/media/id/{mediaId}": {
            "get": {
                "tags": ["media"],
                "summary": "Media details by id",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "mediaId", "required": true}],
                "responses": {
                    "200": {"description": "Upstream body"},
                    "500": {"description": "Media catalog unreachable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/media/title/{title}": {
            "get": {
                "tags": ["media"],
                "summary": "Media details by title",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "title", "required": true},
                    {"type": "string", "in": "query", "name": "year"}
                ],
                "responses": {
                    "200": {"description": "Upstream body"},
                    "500": {"description": "Media catalog unreachable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/media/search/{query}/{page}": {
            "get": {
                "tags": ["media"],
                "summary": "Free-text search",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "query", "required": true},
                    {"type": "integer", "in": "path", "name": "page", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upstream body"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Media catalog unreachable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/media/list/{mediaType}/{category}/{page}": {
            "get": {
                "tags": ["media"],
                "summary": "Search within a media type",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "enum": ["movie", "series", "episode"], "in": "path", "name": "mediaType", "required": true},
                    {"type": "string", "in": "path", "name": "category", "required": true},
                    {"type": "integer", "in": "path", "name": "page", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upstream body"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Media catalog unreachable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/media/latest-queries": {
            "get": {
                "tags": ["media"],
                "summary": "Latest search queries",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.SignUpRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "userName": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "Abc123!@"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "phoneNumber": {"type": "string", "example": "+14155550100"}
            }
        },
        "auth.SignInRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.UpdatePasswordRequest": {
            "type": "object",
            "required": ["password", "newPassword"],
            "properties": {
                "password": {"type": "string"},
                "newPassword": {"type": "string"}
            }
        },
        "favorites.AddFavoriteRequest": {
            "type": "object",
            "required": ["mediaId", "mediaTitle", "mediaType", "mediaPoster", "mediaRate"],
            "properties": {
                "mediaId": {"type": "string", "example": "tt0111161"},
                "mediaTitle": {"type": "string"},
                "mediaType": {"type": "string", "example": "movie"},
                "mediaPoster": {"type": "string"},
                "mediaRate": {"type": "number", "example": 9.3}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid token"},
                "code": {"type": "string", "example": "INVALID_TOKEN"}
            }
        },
        "response.SuccessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Filmdeck API",
	Description:      "Accounts, favorites and media catalog lookups",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
