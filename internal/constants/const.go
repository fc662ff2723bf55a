package constants

import (
	"strings"
)

type CounterKind struct {
	FileName string
	Label    string
}

const (
	BuildNumberFile    = "build_number.txt"
	FlashingNumberFile = "flashing_number.txt"

	// ParentDir is where counter files live relative to the tool's own directory.
	ParentDir = ".."

	LogLevel    = "info"
	FilePerm    = 0644
	NoticeFmt   = "No %s was found, create one"
	IncreaseFmt = "%s increased to: %d"
)

var (
	BuildNumber    = NewCounterKind(BuildNumberFile)
	FlashingNumber = NewCounterKind(FlashingNumberFile)
)

// NewCounterKind derives the label from the file name: "build_number.txt" -> "Build number".
func NewCounterKind(fileName string) CounterKind {
	name := strings.TrimSuffix(fileName, ".txt")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return CounterKind{FileName: fileName, Label: name}
}
