// Package web holds the embedded page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/* static/*
var content embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(content, "templates/*.html")
}

// Static returns the embedded static asset tree rooted at static/
func Static() (fs.FS, error) {
	return fs.Sub(content, "static")
}
