package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "UniSeat API", "description": "Exam seat allocation service", "version": "1.0.0"},
    "basePath": "/api/v1",
    "schemes": ["http"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [{"name": "Authentication"}, {"name": "Locations", "description": "Blocks, floors and classrooms"}, {"name": "Students"}, {"name": "Exams"}, {"name": "SeatPlans", "description": "Seat plan generation and export"}, {"name": "Observability"}],
    "paths": {
        "/auth/login": {
            "post": {"tags": ["Authentication"], "summary": "Authenticate user", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/auth/register": {
            "post": {"tags": ["Authentication"], "summary": "Register operator (admin)", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/auth/me": {
            "get": {"tags": ["Authentication"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/blocks": {
            "get": {"tags": ["Locations"], "summary": "List blocks", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Locations"], "summary": "Create block", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BlockRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/blocks/{id}": {
            "get": {"tags": ["Locations"], "summary": "Get block", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Locations"], "summary": "Update block", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BlockRequest"}}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Locations"], "summary": "Delete block", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/floors": {
            "get": {"tags": ["Locations"], "summary": "List floors", "parameters": [{"name": "block_id", "in": "query", "type": "string", "description": ""}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Locations"], "summary": "Create floor", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FloorRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/floors/{id}": {
            "get": {"tags": ["Locations"], "summary": "Get floor", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Locations"], "summary": "Update floor", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FloorRequest"}}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Locations"], "summary": "Delete floor", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/classrooms": {
            "get": {"tags": ["Locations"], "summary": "List classrooms", "parameters": [{"name": "floor_id", "in": "query", "type": "string", "description": ""}, {"name": "block_id", "in": "query", "type": "string", "description": ""}, {"name": "status", "in": "query", "type": "string", "description": "available, occupied or maintenance"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Locations"], "summary": "Create classroom", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassroomRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/classrooms/{id}": {
            "get": {"tags": ["Locations"], "summary": "Get classroom", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Locations"], "summary": "Update classroom", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassroomRequest"}}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Locations"], "summary": "Delete classroom", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students": {
            "get": {"tags": ["Students"], "summary": "List students", "parameters": [{"name": "branch", "in": "query", "type": "string", "description": "Branch code or comma separated codes"}, {"name": "year", "in": "query", "type": "integer", "description": ""}, {"name": "section", "in": "query", "type": "string", "description": ""}, {"name": "page", "in": "query", "type": "integer", "description": ""}, {"name": "limit", "in": "query", "type": "integer", "description": ""}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Students"], "summary": "Create student", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Get student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Students"], "summary": "Update student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Students"], "summary": "Delete student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams": {
            "get": {"tags": ["Exams"], "summary": "List exams", "parameters": [{"name": "branch", "in": "query", "type": "string", "description": ""}, {"name": "year", "in": "query", "type": "integer", "description": ""}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Exams"], "summary": "Create exam", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExamRequest"}}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{examId}": {
            "get": {"tags": ["Exams"], "summary": "Get exam", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Exams"], "summary": "Update exam", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "ID"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExamRequest"}}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Exams"], "summary": "Delete exam", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/import": {
            "post": {"tags": ["Students"], "summary": "Import students from CSV", "parameters": [{"name": "file", "in": "formData", "required": true, "type": "file"}], "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "413": {"description": "Payload too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{examId}/seatplan": {
            "post": {"tags": ["SeatPlans"], "summary": "Generate seat plan", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "Exam ID"}], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "412": {"description": "Precondition failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "get": {"tags": ["SeatPlans"], "summary": "Get seat plan", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "Exam ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["SeatPlans"], "summary": "Delete seat plan", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "Exam ID"}], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{examId}/seatplan/layout": {
            "get": {"tags": ["SeatPlans"], "summary": "Seat grid per classroom", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "Exam ID"}], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{examId}/seatplan/export": {
            "get": {"tags": ["SeatPlans"], "summary": "Export seat plan", "parameters": [{"name": "examId", "in": "path", "required": true, "type": "string", "description": "Exam ID"}, {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}], "security": [{"BearerAuth": []}], "produces": ["text/csv", "application/pdf"], "responses": {"200": {"description": "File download", "schema": {"type": "file"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/metrics/summary": {
            "get": {"tags": ["Observability"], "summary": "Metrics summary", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "RegisterRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "full_name": {"type": "string"}, "role": {"type": "string"}}},
        "BlockRequest": {"type": "object", "properties": {"name": {"type": "string"}, "location": {"type": "string"}, "total_floors": {"type": "integer"}}},
        "FloorRequest": {"type": "object", "properties": {"block_id": {"type": "string"}, "number": {"type": "integer"}, "total_classrooms": {"type": "integer"}}},
        "ClassroomRequest": {"type": "object", "properties": {"floor_id": {"type": "string"}, "name": {"type": "string"}, "capacity": {"type": "integer"}, "layout_type": {"type": "string"}, "status": {"type": "string"}}},
        "StudentRequest": {"type": "object", "properties": {"name": {"type": "string"}, "reg_number": {"type": "string"}, "branch": {"type": "string"}, "year": {"type": "integer"}, "section": {"type": "string"}, "email": {"type": "string"}}},
        "ExamRequest": {"type": "object", "properties": {"name": {"type": "string"}, "date": {"type": "string"}, "subject": {"type": "string"}, "branch": {"type": "string"}, "year": {"type": "integer"}, "avoid_adjacent_same_branch": {"type": "boolean"}}},
        "Pagination": {"type": "object", "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}}
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
