package main

import "charcanvas/canvas"

type model struct {
	width          int
	height         int
	canvas         *canvas.Canvas
	scenePath      string
	panX           int
	panY           int
	mode           Mode
	fileOp         FileOperation
	filename       string
	errorMessage   string
	successMessage string
	config         *Config
	styles         Styles
}
