// Package docs registra el documento OpenAPI de la API con swaggo/swag.
// Refleja las anotaciones de los handlers y de cmd/api/main.go.
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
		"/adoptions": {
			"post": {
				"description": "Registra una solicitud en estado \"pending\". No cambia el dueño de la mascota.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"adoptions"
				],
				"summary": "Solicitar adopción",
				"parameters": [
					{
						"description": "Solicitud",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/adoptions.requestAdoptionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/adoptions.adoptionResponse"
						}
					},
					"400": {
						"description": "campo faltante",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "pet / adopter not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"adoptions"
				],
				"summary": "Listar solicitudes de adopción",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/adoptions.adoptionResponse"
							}
						}
					},
					"404": {
						"description": "no pet adoptions found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/appointments": {
			"post": {
				"description": "Agenda un turno con status \"scheduled\". La mascota y el veterinario deben existir.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"appointments"
				],
				"summary": "Agendar turno",
				"parameters": [
					{
						"description": "Datos del turno",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appointments.scheduleAppointmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/appointments.appointmentResponse"
						}
					},
					"400": {
						"description": "campo faltante o fecha inválida",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "pet / veterinarian not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"appointments"
				],
				"summary": "Listar turnos",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/appointments.appointmentResponse"
							}
						}
					},
					"404": {
						"description": "no appointments found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/health-records": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"health-records"
				],
				"summary": "Agregar registro de salud",
				"parameters": [
					{
						"description": "Registro clínico",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/healthrecords.createHealthRecordRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/healthrecords.healthRecordResponse"
						}
					},
					"400": {
						"description": "campo faltante",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "pet / veterinarian not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health-records"
				],
				"summary": "Listar registros de salud",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/healthrecords.healthRecordResponse"
							}
						}
					},
					"404": {
						"description": "no health records found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/messages": {
			"post": {
				"description": "Emisor y destinatario deben ser usuarios existentes.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"messages"
				],
				"summary": "Enviar mensaje",
				"parameters": [
					{
						"description": "Mensaje",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/messages.sendMessageRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/messages.messageResponse"
						}
					},
					"400": {
						"description": "campo faltante",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "sender / recipient not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"messages"
				],
				"summary": "Listar mensajes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/messages.messageResponse"
							}
						}
					},
					"404": {
						"description": "no messages found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/notifications": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notifications"
				],
				"summary": "Enviar notificación",
				"parameters": [
					{
						"description": "Notificación",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/notifications.sendNotificationRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/notifications.notificationResponse"
						}
					},
					"400": {
						"description": "campo faltante",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "user not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"notifications"
				],
				"summary": "Listar notificaciones",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/notifications.notificationResponse"
							}
						}
					},
					"404": {
						"description": "no notifications found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/payments": {
			"post": {
				"description": "Crea un pago en estado \"pending\" para un turno existente.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"payments"
				],
				"summary": "Registrar pago",
				"parameters": [
					{
						"description": "Pago",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/payments.createPaymentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/payments.paymentResponse"
						}
					},
					"400": {
						"description": "campo faltante o monto inválido",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "user / appointment not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"payments"
				],
				"summary": "Listar pagos",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/payments.paymentResponse"
							}
						}
					},
					"404": {
						"description": "no payments found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/pets": {
			"post": {
				"description": "Crea una mascota. ownerId se guarda tal cual, no se verifica contra usuarios.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Registrar mascota",
				"parameters": [
					{
						"description": "Datos de la mascota",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/pets.createPetRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/pets.petResponse"
						}
					},
					"400": {
						"description": "campo faltante o edad negativa",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Listar mascotas",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/pets.petResponse"
							}
						}
					},
					"404": {
						"description": "no pets found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/pets/{petID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Obtener mascota",
				"parameters": [
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "petID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pets.petResponse"
						}
					},
					"404": {
						"description": "pet not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/pets/{petID}/prescriptions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prescriptions"
				],
				"summary": "Listar recetas de una mascota",
				"parameters": [
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "petID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/prescriptions.prescriptionResponse"
							}
						}
					},
					"404": {
						"description": "no prescriptions found for pet",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/prescriptions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"prescriptions"
				],
				"summary": "Agregar receta",
				"parameters": [
					{
						"description": "Receta",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/prescriptions.createPrescriptionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/prescriptions.prescriptionResponse"
						}
					},
					"400": {
						"description": "campo faltante",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "pet / veterinarian not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prescriptions"
				],
				"summary": "Listar recetas",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/prescriptions.prescriptionResponse"
							}
						}
					},
					"404": {
						"description": "no prescriptions found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/users": {
			"post": {
				"description": "Registra un usuario. Email y username deben ser únicos; email y teléfono se validan por formato.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Crear usuario",
				"parameters": [
					{
						"description": "Datos del usuario",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.createUserRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"400": {
						"description": "campo faltante, formato inválido o email/username duplicado",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			},
			"get": {
				"description": "Lista todos los usuarios, o solo los de un rol si viene el query param role. Sin resultados devuelve 404.",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Listar usuarios",
				"parameters": [
					{
						"type": "string",
						"description": "PetOwner, Veterinarian o Admin",
						"name": "role",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/users.userResponse"
							}
						}
					},
					"400": {
						"description": "rol inválido",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "no users found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/users/{userID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Obtener usuario",
				"parameters": [
					{
						"type": "string",
						"description": "ID del usuario",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"404": {
						"description": "user not found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/users/{userID}/appointments": {
			"get": {
				"description": "Turnos de las mascotas cuyo dueño es userID.",
				"produces": [
					"application/json"
				],
				"tags": [
					"appointments"
				],
				"summary": "Listar turnos de un usuario",
				"parameters": [
					{
						"type": "string",
						"description": "ID del dueño",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/appointments.appointmentResponse"
							}
						}
					},
					"404": {
						"description": "no appointments found for user",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/users/{userID}/health-records": {
			"get": {
				"description": "Registros de las mascotas cuyo dueño es userID.",
				"produces": [
					"application/json"
				],
				"tags": [
					"health-records"
				],
				"summary": "Listar registros de salud de un usuario",
				"parameters": [
					{
						"type": "string",
						"description": "ID del dueño",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/healthrecords.healthRecordResponse"
							}
						}
					},
					"404": {
						"description": "no health records found for user",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		},
		"/users/{userID}/pets": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Listar mascotas de un usuario",
				"parameters": [
					{
						"type": "string",
						"description": "ID del dueño",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/pets.petResponse"
							}
						}
					},
					"404": {
						"description": "no pets found for user",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"adoptions.adoptionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"petId": {
					"type": "string"
				},
				"adopterId": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"adoptions.requestAdoptionRequest": {
			"type": "object",
			"properties": {
				"petId": {
					"type": "string"
				},
				"adopterId": {
					"type": "string"
				}
			}
		},
		"appointments.appointmentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"appointments.scheduleAppointmentRequest": {
			"type": "object",
			"properties": {
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"healthrecords.createHealthRecordRequest": {
			"type": "object",
			"properties": {
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"record": {
					"type": "string"
				}
			}
		},
		"healthrecords.healthRecordResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"record": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"messages.messageResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"senderId": {
					"type": "string"
				},
				"recipientId": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"messages.sendMessageRequest": {
			"type": "object",
			"properties": {
				"senderId": {
					"type": "string"
				},
				"recipientId": {
					"type": "string"
				},
				"content": {
					"type": "string"
				}
			}
		},
		"notifications.notificationResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"notifications.sendNotificationRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"payments.createPaymentRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"appointmentId": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				}
			}
		},
		"payments.paymentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"appointmentId": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"status": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"pets.createPetRequest": {
			"type": "object",
			"properties": {
				"ownerId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"species": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				}
			}
		},
		"pets.petResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"species": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"prescriptions.createPrescriptionRequest": {
			"type": "object",
			"properties": {
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"medication": {
					"type": "string"
				},
				"dosage": {
					"type": "string"
				}
			}
		},
		"prescriptions.prescriptionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"petId": {
					"type": "string"
				},
				"veterinarianId": {
					"type": "string"
				},
				"medication": {
					"type": "string"
				},
				"dosage": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"respond.ErrorBody": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"users.createUserRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"PetOwner",
						"Veterinarian",
						"Admin"
					]
				}
			}
		},
		"users.userResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Registry API",
	Description:      "Registro validado de usuarios, mascotas, turnos, historias clínicas, recetas, mensajes, notificaciones, pagos y adopciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
