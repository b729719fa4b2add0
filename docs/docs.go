// Package docs registra la especificación OpenAPI servida en /swagger/*.
// Se regenera con `swag init -g cmd/api/main.go` a partir de las anotaciones
// de los handlers.
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
        "/sessions": {
            "post": {"tags": ["session"], "summary": "Crear sesión", "produces": ["application/json"], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/session.createSessionResponse"}}}}
        },
        "/session": {
            "get": {"tags": ["session"], "summary": "Estado de la sesión", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Context"}}, "401": {"description": "unauthorized"}}},
            "delete": {"tags": ["session"], "summary": "Terminar sesión", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"204": {"description": "borrada"}, "401": {"description": "unauthorized"}}}
        },
        "/session/current-pet": {
            "put": {"tags": ["session"], "summary": "Seleccionar mascota actual", "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/session.setCurrentPetRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Context"}}, "400": {"description": "invalid json / petId required"}, "401": {"description": "unauthorized"}, "404": {"description": "pet not found"}}}
        },
        "/pets": {
            "get": {"tags": ["pets"], "summary": "Listar mascotas", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}, "401": {"description": "unauthorized"}}},
            "post": {"tags": ["pets"], "summary": "Registrar mascota", "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}}, "400": {"description": "invalid json / invalid input"}, "401": {"description": "unauthorized"}}}
        },
        "/pets/current": {
            "get": {"tags": ["pets"], "summary": "Mascota actual", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}}, "401": {"description": "unauthorized"}, "404": {"description": "no pets"}}}
        },
        "/pets/{petID}": {
            "get": {"tags": ["pets"], "summary": "Obtener mascota", "parameters": [{"$ref": "#/parameters/sessionID"}, {"type": "string", "in": "path", "name": "petID", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}}, "401": {"description": "unauthorized"}, "404": {"description": "pet not found"}}}
        },
        "/reservations": {
            "get": {"tags": ["reservations"], "summary": "Listar reservas", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/reservations.Reservation"}}}, "401": {"description": "unauthorized"}}},
            "post": {"tags": ["reservations"], "summary": "Reservar (o confirmar reprogramación)", "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/reservations.placementRequest"}}], "responses": {"200": {"description": "reprogramación confirmada", "schema": {"$ref": "#/definitions/reservations.bookResponse"}}, "201": {"description": "reserva nueva", "schema": {"$ref": "#/definitions/reservations.bookResponse"}}, "400": {"description": "MissingField / InvalidDateTime", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}, "401": {"description": "unauthorized"}, "409": {"description": "SlotTaken", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}, "422": {"description": "InsufficientLeadTime", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}}}
        },
        "/reservations/{id}": {
            "get": {"tags": ["reservations"], "summary": "Obtener reserva", "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/reservationID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/reservations.Reservation"}}, "401": {"description": "unauthorized"}, "404": {"description": "reservation not found"}}},
            "put": {"tags": ["reservations"], "summary": "Reprogramar reserva", "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/reservationID"}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/reservations.placementRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/reservations.Reservation"}}, "400": {"description": "MissingField / InvalidDateTime", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}, "404": {"description": "reservation not found"}, "409": {"description": "SlotTaken", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}, "422": {"description": "InsufficientLeadTime", "schema": {"$ref": "#/definitions/reservations.errorResponse"}}}},
            "delete": {"tags": ["reservations"], "summary": "Cancelar reserva", "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/reservationID"}], "responses": {"204": {"description": "cancelada"}, "401": {"description": "unauthorized"}}}
        },
        "/reservations/{id}/reschedule": {
            "post": {"tags": ["reservations"], "summary": "Iniciar reprogramación", "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/reservationID"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/reservations.Reservation"}}, "401": {"description": "unauthorized"}, "404": {"description": "reservation not found"}}}
        },
        "/calendar": {
            "get": {"tags": ["calendar"], "summary": "Grilla mensual", "parameters": [{"$ref": "#/parameters/sessionID"}, {"type": "integer", "in": "query", "name": "year"}, {"type": "integer", "in": "query", "name": "month"}], "responses": {"200": {"description": "OK"}, "400": {"description": "invalid year / invalid month"}, "401": {"description": "unauthorized"}}}
        },
        "/calendar/days/{date}": {
            "get": {"tags": ["calendar"], "summary": "Detalle de un día", "parameters": [{"$ref": "#/parameters/sessionID"}, {"type": "string", "in": "path", "name": "date", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "date must be YYYY-MM-DD"}, "401": {"description": "unauthorized"}}}
        },
        "/notifications": {
            "get": {"tags": ["notifications"], "summary": "Notificaciones de hoy y mañana", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}
        },
        "/reminders": {
            "get": {"tags": ["notifications"], "summary": "Recordatorios del dashboard", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}
        }
    },
    "parameters": {
        "sessionID": {"type": "string", "description": "ID de sesión (pestaña)", "name": "X-Session-ID", "in": "header", "required": true},
        "reservationID": {"type": "integer", "description": "ID de la reserva", "name": "id", "in": "path", "required": true}
    },
    "definitions": {
        "reservations.Reservation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "petId": {"type": "string"},
                "petName": {"type": "string"},
                "service": {"type": "string"},
                "location": {"type": "string"},
                "date": {"type": "string", "example": "2024-06-10"},
                "time": {"type": "string", "example": "09:00"},
                "notes": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "reservations.placementRequest": {
            "type": "object",
            "properties": {
                "petId": {"type": "string"},
                "petName": {"type": "string"},
                "service": {"type": "string", "example": "Grooming"},
                "location": {"type": "string", "example": "Downtown Clinic"},
                "date": {"type": "string", "example": "2024-06-10"},
                "time": {"type": "string", "example": "09:00"},
                "notes": {"type": "string"}
            }
        },
        "reservations.bookResponse": {
            "type": "object",
            "properties": {
                "reservation": {"$ref": "#/definitions/reservations.Reservation"},
                "rescheduled": {"type": "boolean"},
                "dueSoon": {"type": "boolean"},
                "message": {"type": "string"},
                "next": {"type": "string", "enum": ["notifications", "calendar"]}
            }
        },
        "reservations.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "enum": ["MissingField", "InvalidDateTime", "InsufficientLeadTime", "SlotTaken"]},
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "example": "dog"},
                "breed": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/pets.Record"}}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "breed": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/pets.Record"}},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "pets.Record": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["vaccination", "medical", "other"]},
                "title": {"type": "string"},
                "date": {"type": "string"},
                "file": {"type": "string"}
            }
        },
        "session.Context": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "currentPetId": {"type": "string"},
                "rescheduleId": {"type": "integer"}
            }
        },
        "session.createSessionResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}}
        },
        "session.setCurrentPetRequest": {
            "type": "object",
            "properties": {"petId": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Scheduler API",
	Description:      "Reservas, calendario y avisos por sesión.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
