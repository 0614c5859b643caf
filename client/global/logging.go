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

const (
	mb             = 1000000
	defaultLogSize = 2.5 * mb
	// main log plus archived logs
	defaultMaxLogs = 2
)

// rollingFileWriter appends to <dir>/<name>.log. Once that file grows past MaxSize
// it is archived as <name>-1.log, older archives shift up by one, and anything past
// MaxLogs total files is deleted.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	MaxLogs       int
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		absFileDir = fileDir
	}

	// Create dir for log files if they dont exist
	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		initLogger.Err(err).Str("dir", absFileDir).Msg("could not create log directory")
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultLogSize,
		MaxLogs:       defaultMaxLogs,
	}
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) archivePath(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

// archiveIndices returns the indices of archived logs, highest first.
// Files whose suffix isn't a positive number are not ours and are skipped.
func (w rollingFileWriter) archiveIndices() ([]int, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indices := lo.FilterMap(matches, func(match string, _ int) (int, bool) {
		index, ok := logIndex(w.FileName, match)
		return index, ok
	})

	slices.Sort(indices)
	slices.Reverse(indices)
	return indices, nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	stats, err := os.Stat(w.mainLogPath())
	if err == nil && stats.Size()+int64(len(b)) > w.MaxSize && stats.Size() > 0 {
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

func (w rollingFileWriter) rotate() error {
	indices, err := w.archiveIndices()
	if err != nil {
		return err
	}

	// highest first so a rename never lands on a file that hasn't moved yet
	for _, index := range indices {
		if index+1 >= w.MaxLogs {
			if err := os.Remove(w.archivePath(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.archivePath(index), w.archivePath(index+1)); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.mainLogPath())
	}

	return os.Rename(w.mainLogPath(), w.archivePath(1))
}

func logIndex(baseFileName string, filePath string) (int, bool) {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, found := strings.CutPrefix(fileName, baseFileName+"-")
	if !found {
		return 0, false
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 1 {
		return 0, false
	}

	return index, true
}
