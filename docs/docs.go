// Package docs holds the OpenAPI description served at /api/swagger.
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
        "/jobs": {
            "get": {
                "description": "All postings matching the optional filters, newest first. No paging.",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List jobs",
                "parameters": [
                    {"enum": ["Full Time", "Part Time", "Internship", "Contract"], "type": "string", "description": "Exact job type", "name": "type", "in": "query"},
                    {"type": "string", "description": "Case-insensitive location substring", "name": "location", "in": "query"},
                    {"type": "string", "description": "Case-insensitive substring of any tag", "name": "tag", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Job"}}},
                    "500": {"description": "Error getting jobs", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Stores the posting as submitted. Missing location/type/tags take defaults; nothing is validated.",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["jobs"],
                "summary": "Create a job",
                "parameters": [
                    {"description": "Job JSON", "name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.JobInput"}}
                ],
                "responses": {
                    "200": {"description": "Job saved successfully", "schema": {"type": "string"}},
                    "500": {"description": "Error saving job", "schema": {"type": "string"}}
                }
            }
        },
        "/jobs/export": {
            "get": {
                "description": "The filtered listing as an xlsx or csv attachment.",
                "produces": ["application/octet-stream"],
                "tags": ["jobs"],
                "summary": "Export jobs",
                "parameters": [
                    {"type": "string", "description": "xlsx (default) or csv", "name": "format", "in": "query"},
                    {"type": "string", "description": "Exact job type", "name": "type", "in": "query"},
                    {"type": "string", "description": "Case-insensitive location substring", "name": "location", "in": "query"},
                    {"type": "string", "description": "Case-insensitive substring of any tag", "name": "tag", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/preview": {
            "get": {
                "description": "Fetches url and returns its og:title, og:description and og:image. Never cached.",
                "produces": ["application/json"],
                "tags": ["preview"],
                "summary": "Link preview",
                "parameters": [
                    {"type": "string", "description": "Page to preview", "name": "url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LinkPreview"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Job": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "company": {"type": "string"},
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "link": {"type": "string"},
                "location": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "domain.JobInput": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "description": {"type": "string"},
                "link": {"type": "string"},
                "location": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "domain.LinkPreview": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "Job listings, submissions and Open Graph link previews.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
