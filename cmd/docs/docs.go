// Package docs holds the Swagger 2.0 description served at /swagger in non-production builds.
// It mirrors the @-annotations in internal/handlers; regenerate it after changing them with
//
//	swag init -g cmd/procurement_backend/main.go -o cmd/docs
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
        "/expressions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates a draft need expression owned by the caller",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Create a need expression",
                "parameters": [
                    {
                        "description": "Expression details",
                        "name": "expression",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateNeedExpressionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input or unknown material",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Role cannot create expressions",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Division, service or material not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists expressions newest first. Requesters only ever see their own.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "List need expressions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Status filter",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Only the caller's expressions",
                        "name": "mine",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListNeedExpressionsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Get a need expression",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Expression not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the lines and optionally the title. Only the owner, only in DRAFT.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Edit a draft need expression",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New content",
                        "name": "expression",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.EditNeedExpressionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Not a draft",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Delete a draft need expression",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Not a draft",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}/decision": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Approve or reject a pending expression",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Outcome and optional comment",
                        "name": "decision",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DecideNeedExpressionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid outcome",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Role cannot decide",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}/reopen": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Reopen a rejected expression as a draft",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}/start": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Mark an approved expression as in progress",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "403": {
                        "description": "Role cannot start progress",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}/submit": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Submit a draft for approval",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/expressions/{expressionID}/withdraw": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "expressions"
                ],
                "summary": "Withdraw a pending expression back to draft",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expression ID",
                        "name": "expressionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NeedExpressionResponse"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Converts an approved expression into an order and moves the expression to IN_PROGRESS",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Create a purchase order",
                "parameters": [
                    {
                        "description": "Order terms and lines",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePurchaseOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Role cannot manage orders",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Expression, supplier or material not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Expression not approved or order already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "List purchase orders",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Status filter",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Originating expression",
                        "name": "expressionID",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListPurchaseOrdersResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders/{orderID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Get a purchase order with totals and progress",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseOrderResponse"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Overwrites terms and lines; received quantities carry over to matching lines",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Regenerate a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New terms and lines",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegeneratePurchaseOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Cancelled order or conflict with receptions",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders/{orderID}/cancel": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Cancel a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseOrderResponse"
                        }
                    },
                    "409": {
                        "description": "Order cannot be cancelled",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders/{orderID}/document": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Resolved document view of a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderDocument"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders/{orderID}/receptions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receptions"
                ],
                "summary": "Record a delivery against a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Delivered quantities per order line",
                        "name": "reception",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordReceptionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.RecordReceptionResponse"
                        }
                    },
                    "400": {
                        "description": "Conformity mismatch or empty reception",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Over-delivery or cancelled order",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receptions"
                ],
                "summary": "List the receptions of a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
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
                                "$ref": "#/definitions/dto.ReceptionResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/orders/{orderID}/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Delivery progress of a purchase order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FulfillmentStats"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/receptions/{receptionID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receptions"
                ],
                "summary": "Get a reception",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reception ID",
                        "name": "receptionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceptionResponse"
                        }
                    },
                    "404": {
                        "description": "Reception not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/receptions/{receptionID}/confirmation": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Idempotent; the flag never goes back to false",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "receptions"
                ],
                "summary": "Mark a reception's confirmation document as generated",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reception ID",
                        "name": "receptionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceptionResponse"
                        }
                    },
                    "403": {
                        "description": "Role cannot confirm receptions",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Reception not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "decimal.Decimal": {
            "type": "object"
        },
        "domain.DecisionOutcome": {
            "type": "string",
            "enum": [
                "APPROVED",
                "REJECTED"
            ],
            "x-enum-varnames": [
                "OutcomeApproved",
                "OutcomeRejected"
            ]
        },
        "domain.ExpressionStatus": {
            "type": "string",
            "enum": [
                "DRAFT",
                "PENDING",
                "APPROVED",
                "REJECTED",
                "IN_PROGRESS",
                "DELETED"
            ],
            "x-enum-varnames": [
                "ExpressionDraft",
                "ExpressionPending",
                "ExpressionApproved",
                "ExpressionRejected",
                "ExpressionInProgress",
                "ExpressionDeleted"
            ]
        },
        "domain.FulfillmentStats": {
            "type": "object",
            "properties": {
                "orderID": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.LineStats"
                    }
                },
                "totalRequested": {
                    "type": "integer"
                },
                "totalReceived": {
                    "type": "integer"
                },
                "percentGlobal": {
                    "type": "integer"
                },
                "receptionCount": {
                    "type": "integer"
                },
                "status": {
                    "$ref": "#/definitions/domain.OrderStatus"
                }
            }
        },
        "domain.LineStats": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "requested": {
                    "type": "integer"
                },
                "received": {
                    "type": "integer"
                },
                "remaining": {
                    "type": "integer"
                },
                "percentReceived": {
                    "type": "integer"
                }
            }
        },
        "domain.NeedLine": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "justification": {
                    "type": "string"
                },
                "materialID": {
                    "type": "string"
                }
            }
        },
        "domain.OrderLine": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unitPrice": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "materialID": {
                    "type": "string"
                },
                "materialCode": {
                    "type": "string"
                },
                "materialName": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                },
                "receivedQuantity": {
                    "type": "integer"
                }
            }
        },
        "domain.OrderStatus": {
            "type": "string",
            "enum": [
                "PENDING",
                "PARTIALLY_DELIVERED",
                "DELIVERED",
                "CANCELLED"
            ],
            "x-enum-varnames": [
                "OrderPending",
                "OrderPartiallyDelivered",
                "OrderDelivered",
                "OrderCancelled"
            ]
        },
        "domain.ReceptionLine": {
            "type": "object",
            "properties": {
                "lineID": {
                    "type": "string"
                },
                "orderLineID": {
                    "type": "string"
                },
                "quantityReceived": {
                    "type": "integer"
                },
                "quantityAccepted": {
                    "type": "integer"
                },
                "quantityRejected": {
                    "type": "integer"
                },
                "observations": {
                    "type": "string"
                }
            }
        },
        "dto.CreateNeedExpressionRequest": {
            "type": "object",
            "required": [
                "divisionID",
                "lines",
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string",
                    "maxLength": 255
                },
                "divisionID": {
                    "type": "string"
                },
                "serviceID": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.NeedLineRequest"
                    },
                    "minItems": 1
                }
            }
        },
        "dto.CreatePurchaseOrderRequest": {
            "type": "object",
            "required": [
                "expressionID",
                "lines"
            ],
            "properties": {
                "expressionID": {
                    "type": "string"
                },
                "supplierID": {
                    "type": "string"
                },
                "deliveryAddress": {
                    "type": "string"
                },
                "taxRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "discountRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "observations": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.OrderLineRequest"
                    },
                    "minItems": 1
                }
            }
        },
        "dto.DecideNeedExpressionRequest": {
            "type": "object",
            "required": [
                "outcome"
            ],
            "properties": {
                "outcome": {
                    "type": "string",
                    "enum": [
                        "APPROVED",
                        "REJECTED"
                    ]
                },
                "comment": {
                    "type": "string"
                }
            }
        },
        "dto.EditNeedExpressionRequest": {
            "type": "object",
            "required": [
                "lines"
            ],
            "properties": {
                "title": {
                    "type": "string",
                    "maxLength": 255
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.NeedLineRequest"
                    },
                    "minItems": 1
                }
            }
        },
        "dto.ListNeedExpressionsResponse": {
            "type": "object",
            "properties": {
                "expressions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.NeedExpressionResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.ListPurchaseOrdersResponse": {
            "type": "object",
            "properties": {
                "orders": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PurchaseOrderResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.NeedExpressionResponse": {
            "type": "object",
            "properties": {
                "expressionID": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "displayNumber": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "divisionID": {
                    "type": "string"
                },
                "serviceID": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.ExpressionStatus"
                },
                "decisionComment": {
                    "type": "string"
                },
                "decidedBy": {
                    "type": "string"
                },
                "decidedAt": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.NeedLine"
                    }
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.NeedLineRequest": {
            "type": "object",
            "required": [
                "description",
                "materialID",
                "quantity"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer",
                    "minimum": 1
                },
                "justification": {
                    "type": "string"
                },
                "materialID": {
                    "type": "string"
                }
            }
        },
        "dto.OrderDocument": {
            "type": "object",
            "properties": {
                "expression": {
                    "$ref": "#/definitions/dto.NeedExpressionResponse"
                },
                "order": {
                    "$ref": "#/definitions/dto.PurchaseOrderResponse"
                },
                "receptions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ReceptionResponse"
                    }
                }
            }
        },
        "dto.OrderLineRequest": {
            "type": "object",
            "required": [
                "description",
                "materialID",
                "quantity"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer",
                    "minimum": 1
                },
                "unitPrice": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "materialID": {
                    "type": "string"
                }
            }
        },
        "dto.PurchaseOrderResponse": {
            "type": "object",
            "properties": {
                "orderID": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "displayNumber": {
                    "type": "string"
                },
                "expressionID": {
                    "type": "string"
                },
                "supplierID": {
                    "type": "string"
                },
                "supplierName": {
                    "type": "string"
                },
                "deliveryAddress": {
                    "type": "string"
                },
                "taxRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "discountRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "observations": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.OrderStatus"
                },
                "emittedAt": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.OrderLine"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.TotalsResponse"
                },
                "stats": {
                    "$ref": "#/definitions/domain.FulfillmentStats"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.ReceptionLineRequest": {
            "type": "object",
            "required": [
                "orderLineID"
            ],
            "properties": {
                "orderLineID": {
                    "type": "string"
                },
                "quantityReceived": {
                    "type": "integer",
                    "minimum": 0
                },
                "quantityAccepted": {
                    "type": "integer",
                    "minimum": 0
                },
                "quantityRejected": {
                    "type": "integer",
                    "minimum": 0
                },
                "observations": {
                    "type": "string"
                }
            }
        },
        "dto.ReceptionResponse": {
            "type": "object",
            "properties": {
                "receptionID": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "displayNumber": {
                    "type": "string"
                },
                "orderID": {
                    "type": "string"
                },
                "receivedAt": {
                    "type": "string"
                },
                "carrier": {
                    "type": "string"
                },
                "observations": {
                    "type": "string"
                },
                "confirmationGenerated": {
                    "type": "boolean"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReceptionLine"
                    }
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                }
            }
        },
        "dto.RecordReceptionRequest": {
            "type": "object",
            "required": [
                "lines"
            ],
            "properties": {
                "receivedAt": {
                    "type": "string"
                },
                "carrier": {
                    "type": "string"
                },
                "observations": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ReceptionLineRequest"
                    },
                    "minItems": 1
                }
            }
        },
        "dto.RecordReceptionResponse": {
            "type": "object",
            "properties": {
                "reception": {
                    "$ref": "#/definitions/dto.ReceptionResponse"
                },
                "stats": {
                    "$ref": "#/definitions/domain.FulfillmentStats"
                }
            }
        },
        "dto.RegeneratePurchaseOrderRequest": {
            "type": "object",
            "required": [
                "lines"
            ],
            "properties": {
                "supplierID": {
                    "type": "string"
                },
                "deliveryAddress": {
                    "type": "string"
                },
                "taxRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "discountRate": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "observations": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.OrderLineRequest"
                    },
                    "minItems": 1
                }
            }
        },
        "dto.TotalsResponse": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "discountAmount": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "afterDiscount": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "taxAmount": {
                    "$ref": "#/definitions/decimal.Decimal"
                },
                "total": {
                    "$ref": "#/definitions/decimal.Decimal"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}
`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Procurement Tracker API",
	Description:      "Need expressions, purchase orders and receptions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
