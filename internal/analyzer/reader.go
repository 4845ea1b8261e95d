package analyzer

import (
	"errors"
	"strings"

	"github.com/nxadm/tail"

	fserrors "github.com/livp123/failscan/pkg/errors"
)

// readLines calls fn for every line of path, start to end, then returns.
// The file is read once without following. "\n", "\r\n" and a lone "\r" all end a line.
// readLines 从头到尾读取 path 的每一行并调用 fn，不跟随文件增长。
func readLines(path string, fn func(line string)) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    false,
		ReOpen:    false,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fserrors.NewFileError(path, err)
	}

	// Lines is closed when the reader hits EOF or fails; drain it either way.
	var lineErr error
	for line := range t.Lines {
		if lineErr != nil {
			continue
		}
		if line.Err != nil {
			lineErr = line.Err
			continue
		}
		for _, rec := range splitRecords(line.Text) {
			fn(rec)
		}
	}

	if err := t.Wait(); err != nil && lineErr == nil {
		lineErr = err
	}
	if lineErr != nil {
		if errors.Is(lineErr, fserrors.ErrReadFailed) {
			return lineErr
		}
		return fserrors.NewFileError(path, lineErr)
	}
	return nil
}

// splitRecords breaks text on lone carriage returns; the "\r" of a "\r\n" ending is dropped.
func splitRecords(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\r"), "\r")
}
