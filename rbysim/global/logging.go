package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// rollingFileWriter appends to <name>.log and, once that grows past maxSize,
// shifts it to <name>-1.log, <name>-1.log to <name>-2.log and so on,
// keeping at most maxLogs files in total.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
	maxSize       int64
	maxLogs       int
}

func NewRollingFileWriter(fileDir string, fileName string, maxSize int64, maxLogs int) (rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return rollingFileWriter{}, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return rollingFileWriter{}, err
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       maxSize,
		maxLogs:       max(maxLogs, 1),
	}, nil
}

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLog(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

// archivedLogs returns the indices of every <name>-N.log file, highest first
func (w rollingFileWriter) archivedLogs() ([]int, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indices := lo.FilterMap(logMatches, func(log string, _ int) (int, bool) {
		index := getLogIndex(w.FileName, log)
		return index, index > 0
	})

	slices.Sort(indices)
	slices.Reverse(indices)

	return indices, nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	stats, err := os.Stat(w.getFullFilePath())
	if err == nil && stats.Size()+int64(len(b)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

func (w rollingFileWriter) rotate() error {
	indices, err := w.archivedLogs()
	if err != nil {
		return err
	}

	// highest first so a rename never lands on a file that still has to move
	for _, index := range indices {
		if index+1 >= w.maxLogs {
			if err := os.Remove(w.indexedLog(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.indexedLog(index), w.indexedLog(index+1)); err != nil {
			return err
		}
	}

	if w.maxLogs == 1 {
		return os.Remove(w.getFullFilePath())
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(1))
}

// getLogIndex returns N for <fileName>-N.log, or -1 if log does not look like that
func getLogIndex(fileName string, log string) int {
	trimmed, ok := strings.CutPrefix(filepath.Base(log), fileName+"-")
	if !ok {
		return -1
	}

	index, err := strconv.Atoi(strings.TrimSuffix(trimmed, ".log"))
	if err != nil {
		return -1
	}

	return index
}
