package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// customTab is the extra tab that lists the flat custom overlay.
	customTab = "Custom"

	statusTimeoutSeconds = 4
	searchCharLimit      = 64
	formCharLimit        = 256
	formInputWidth       = 48
	contentMaxWidth      = 100

	// listOverheadLines covers title, tabs, search box, status and footer.
	// Keep this in sync with the View layout.
	listOverheadLines = 8
	// detailsLines is the fixed height reserved for the details pane.
	detailsLines = 7
	// listMinHeight enforces a minimum list height to avoid collapsing.
	listMinHeight = 3

	statusTimeout = time.Duration(statusTimeoutSeconds) * time.Second
)

// accentPalette is the set of ANSI colours the theme key cycles through. The first is the default.
//
//nolint:gochecknoglobals // Read-only lookup table.
var accentPalette = []string{"69", "205", "42", "214", "39", "141"}
