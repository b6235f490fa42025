package ui

import (
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like descriptions
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasDestColor = color.New(color.FgWhite, color.Underline).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// List Colors
var (
	ListItemColor = color.New(color.FgCyan).SprintFunc()
)

var kindColors = map[resolution.Kind]func(a ...interface{}) string{
	resolution.KindDirectURL:      color.New(color.FgBlue, color.Bold).SprintFunc(),
	resolution.KindAlias:          color.New(color.FgYellow, color.Bold).SprintFunc(),
	resolution.KindLocalhostPort:  color.New(color.FgMagenta, color.Bold).SprintFunc(),
	resolution.KindComputedValue:  color.New(color.FgGreen, color.Bold).SprintFunc(),
	resolution.KindSearchFallback: color.New(color.FgCyan, color.Bold).SprintFunc(),
}

// KindColor renders a classification kind in its own colour.
func KindColor(kind resolution.Kind) string {
	if fn, ok := kindColors[kind]; ok {
		return fn(string(kind))
	}
	return string(kind)
}
