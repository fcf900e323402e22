// Package docs is generated by swag from the handler annotations. Regenerate
// with: swag init -g cmd/office-api/main.go -o docs
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
        "/api/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/api/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/api/auth/logout": {"post": {"tags": ["auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}},
        "/api/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/users/profile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Own profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update own profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/users/change-password": {"post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Change own password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/api/patients": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["patients"], "summary": "List patients", "parameters": [{"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "pageSize", "in": "query"}, {"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["patients"], "summary": "Create a patient", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/patients/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["patients"], "summary": "Get a patient", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["patients"], "summary": "Update a patient", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/patients/{id}/medical-records": {"get": {"security": [{"BearerAuth": []}], "tags": ["patients"], "summary": "List a patient's medical records", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/appointments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["appointments"], "summary": "List appointments in a date range", "parameters": [{"type": "string", "name": "start_date", "in": "query", "required": true}, {"type": "string", "name": "end_date", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["appointments"], "summary": "Create an appointment", "responses": {"201": {"description": "Created"}}}
        },
        "/api/appointments/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["appointments"], "summary": "Get an appointment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["appointments"], "summary": "Update an appointment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/appointments/doctor/{doctorId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["appointments"], "summary": "List a doctor's appointments", "parameters": [{"type": "string", "name": "doctorId", "in": "path", "required": true}, {"type": "string", "name": "start_date", "in": "query", "required": true}, {"type": "string", "name": "end_date", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/medical-records": {"post": {"security": [{"BearerAuth": []}], "tags": ["medical-records"], "summary": "Create a medical record", "responses": {"201": {"description": "Created"}}}},
        "/api/medical-records/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["medical-records"], "summary": "Get a medical record", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["medical-records"], "summary": "Update a medical record", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/audit-events": {"get": {"security": [{"BearerAuth": []}], "tags": ["audit"], "summary": "List audit events", "parameters": [{"type": "string", "name": "actor_id", "in": "query"}, {"type": "string", "name": "resource", "in": "query"}, {"type": "string", "name": "resource_id", "in": "query"}, {"type": "string", "name": "since", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "pageSize", "in": "query"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Medical Office API",
	Description:      "Patients, appointments and medical records for a medical office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
