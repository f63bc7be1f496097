//go:build windows

package filelock

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const (
	lockfileFailImmediately = 0x00000001
	lockRetryInterval       = time.Millisecond
)

func lockShared(f *os.File) error {
	ol := new(windows.Overlapped)
	for {
		// No LOCKFILE_EXCLUSIVE_LOCK flag: a shared lock.
		err := windows.LockFileEx(
			windows.Handle(f.Fd()),
			lockfileFailImmediately,
			0, // reserved
			1, // lock 1 byte
			0, // high word
			ol,
		)
		if err == nil {
			return nil
		}
		// ERROR_LOCK_VIOLATION means a writer holds the exclusive lock.
		// Blocking inside LockFileEx would pin the OS thread, so poll.
		if !errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return err
		}
		time.Sleep(lockRetryInterval)
	}
}

func unlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(
		windows.Handle(f.Fd()),
		0, // reserved
		1, // unlock 1 byte
		0, // high word
		ol,
	)
}
