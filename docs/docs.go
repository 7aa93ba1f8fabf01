// Package docs registers the swagger document served at /swagger/*any.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/capabilities": {
            "get": {
                "description": "Returns the capability providers with their parameter schemas.",
                "produces": ["application/json"],
                "tags": ["Capabilities"],
                "summary": "List capabilities",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/query": {
            "post": {
                "description": "Classifies the request, fulfils it and returns a tagged envelope. Domain failures are reported with success=false and response_type=error, still with status 200. Consumers should treat an unknown response_type as general text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Query"],
                "summary": "Answer a travel request",
                "parameters": [
                    {
                        "description": "Travel request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.queryReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.queryResp"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "http.queryReq": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "Plan a 5-day trip to Paris"}
            }
        },
        "http.queryResp": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string", "example": "Success"},
                "response_type": {
                    "type": "string",
                    "enum": ["flight", "hotel", "travel_plan", "general", "error"],
                    "example": "travel_plan"
                },
                "success": {"type": "boolean", "example": true}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Travel Assistant API",
	Description:      "Answers free-form travel requests with a flight, hotel or travel plan recommendation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
