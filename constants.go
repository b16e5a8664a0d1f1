package main

type Mode int

const (
	ModeView Mode = iota
	ModeHelp
	ModeFileInput
)

type FileOperation int

const (
	FileOpSaveTXT FileOperation = iota
	FileOpSavePNG
	FileOpSavePDF
	FileOpSaveScene
)

func (op FileOperation) extension() string {
	switch op {
	case FileOpSavePNG:
		return ".png"
	case FileOpSavePDF:
		return ".pdf"
	case FileOpSaveScene:
		return ".scene"
	default:
		return ".txt"
	}
}

func (op FileOperation) String() string {
	switch op {
	case FileOpSavePNG:
		return "PNG"
	case FileOpSavePDF:
		return "PDF"
	case FileOpSaveScene:
		return "scene"
	default:
		return "text"
	}
}

const (
	defaultSceneName = "canvas"
	logFileName      = "charcanvas.log"
	configFileName   = ".charcanvasrc"
)
