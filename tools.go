//go:build tools

package main

// Fija la versión de swag (generador de docs/swagger.json) en go.mod.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
