package utils

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var moduleSourceDir string

func init() {
	_, file, _, _ := runtime.Caller(0)
	moduleSourceDir = sourceDir(file)
}

func sourceDir(file string) string {
	dir := filepath.Dir(filepath.Dir(filepath.ToSlash(file)))
	return filepath.ToSlash(dir) + "/"
}

// FileWithLineNum return the file name and line number of the first caller outside this module
func FileWithLineNum() string {
	frame := CallerFrame()
	if frame.PC == 0 {
		return ""
	}
	return frame.File + ":" + strconv.FormatInt(int64(frame.Line), 10)
}

// CallerFrame returns the first stack frame outside this module, test files excepted
func CallerFrame() runtime.Frame {
	pcs := [15]uintptr{}
	// skip runtime.Callers and CallerFrame itself
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && (!strings.HasPrefix(frame.File, moduleSourceDir) || strings.HasSuffix(frame.File, "_test.go")) {
			return frame
		}
		if !more {
			break
		}
	}
	return runtime.Frame{}
}

// CheckTruth check string true or not
func CheckTruth(vals ...string) bool {
	for _, val := range vals {
		if val != "" && !strings.EqualFold(val, "false") && val != "0" {
			return true
		}
	}
	return false
}

func Contains(elems []string, elem string) bool {
	for _, e := range elems {
		if elem == e {
			return true
		}
	}
	return false
}
