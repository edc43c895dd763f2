// Package docs holds the swagger document served on /swagger. Regenerate with `swag init -g cmd/api/main.go`.
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
        "/agent/chat": {
            "post": {
                "description": "Runs one conversation turn for the phone number and returns the agent reply and the tools it used.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Send a message to the delivery agent",
                "parameters": [
                    {
                        "description": "Customer message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/agent/conversations": {
            "delete": {
                "description": "Drops the stored memory of every phone number.",
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Clear all conversations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.clearResp"}}
                }
            }
        },
        "/agent/conversations/{phone}": {
            "delete": {
                "description": "Drops the stored memory of a phone number. The next message starts a fresh conversation.",
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Clear one conversation",
                "parameters": [
                    {"type": "string", "description": "Phone number", "name": "phone", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.clearResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "actions": {"type": "array", "items": {"type": "string"}},
                "reply": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.clearResp": {
            "type": "object",
            "properties": {
                "cleared": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
	Host:             "localhost:3000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "A.B Deliveries Agent API",
	Description:      "Hebrew customer-service chat agent for A.B Deliveries with shipment lookup and customer records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
