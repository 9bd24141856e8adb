package ui

// Package ui is the terminal presentation adapter. It polls the runner's
// published state on a fixed tick and renders it; the runner never calls
// back into the UI.
