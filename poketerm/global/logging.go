package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/nathanieltooley/porycalc/poketerm/errorutils"
	"github.com/samber/lo"
)

const (
	mb = 1000000

	defaultMaxLogSize = 2.5 * mb
	defaultMaxLogs    = 2
)

// rollingFileWriter appends to <name>.log until it reaches MaxSize,
// then shifts it to <name>-1.log (and older logs up by one) and keeps at most MaxLogs files.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	MaxLogs       int
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir := errorutils.Must(filepath.Abs(fileDir))

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultMaxLogSize,
		MaxLogs:       defaultMaxLogs,
	}
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLogPath(fileName string, index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// archivedLogs gets every <name>-N.log file, oldest (highest N) last
func (w rollingFileWriter) archivedLogs(prefix string) ([]string, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), prefix+"-*.log")
	if err != nil {
		return nil, err
	}

	paths := lo.Map(matches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	})

	slices.SortFunc(paths, func(a, b string) int {
		return int(getLogIndex(prefix, a) - getLogIndex(prefix, b))
	})

	return paths, nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	stats, err := os.Stat(w.mainLogPath())
	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}

	if stats != nil && stats.Size() >= w.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate moves the main log into the archive and drops archives past MaxLogs
func (w rollingFileWriter) rotate() error {
	logs, err := w.archivedLogs(w.FileName)
	if err != nil {
		return err
	}

	// Rename from the oldest down so that name-1 never overwrites name-2
	for i := len(logs) - 1; i >= 0; i-- {
		log := logs[i]
		index := getLogIndex(w.FileName, log)

		// get rid of messed up log files
		if index < 0 {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(log, w.indexedLogPath(w.FileName, index+1)); err != nil {
			return err
		}
	}

	if err := os.Rename(w.mainLogPath(), w.indexedLogPath(w.FileName, 1)); err != nil {
		return err
	}

	logs, err = w.archivedLogs(w.FileName)
	if err != nil {
		return err
	}

	// The main log will be recreated on write and counts towards MaxLogs
	for len(logs)+1 > w.MaxLogs && len(logs) > 0 {
		if err := os.Remove(logs[len(logs)-1]); err != nil {
			return err
		}

		logs = logs[:len(logs)-1]
	}

	return nil
}

// getLogIndex parses N out of <baseFileName>-N.log, or -1 if the name doesn't fit
func getLogIndex(baseFileName string, filePath string) int64 {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, ok := strings.CutPrefix(fileName, baseFileName+"-")
	if !ok {
		return -1
	}

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil {
		return -1
	}

	return index
}
