package score

import (
	"fmt"
	"os"
	"path/filepath"
)

var scoreDebugEnv = os.Getenv("FPICK_DEBUG_SCORE") == "1"
var scoreDebugFile = os.Getenv("FPICK_DEBUG_SCORE_FILE")

func scoreDebugEnabled() bool {
	return scoreDebugEnv
}

func scoreLogf(format string, args ...any) {
	if scoreDebugFile == "" {
		fmt.Printf("[score-debug] "+format+"\n", args...)
		return
	}
	abspath := scoreDebugFile
	if !filepath.IsAbs(abspath) {
		cwd, err := os.Getwd()
		if err == nil {
			abspath = filepath.Join(cwd, scoreDebugFile)
		}
	}
	f, err := os.OpenFile(abspath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("[score-debug] open file error: %v\n", err)
		fmt.Printf("[score-debug] "+format+"\n", args...)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Printf("[score-debug] close file error: %v\n", cerr)
		}
	}()
	if _, err := fmt.Fprintf(f, "[score-debug] "+format+"\n", args...); err != nil {
		fmt.Printf("[score-debug] write file error: %v\n", err)
	}
}
