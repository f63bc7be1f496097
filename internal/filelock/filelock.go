// Package filelock provides advisory file locking so the tasks file is
// never read while a cooperating writer holds an exclusive lock on it.
package filelock

import "os"

// OpenShared opens path read-only and acquires a shared advisory lock on
// it. Readers do not block each other; an exclusive holder blocks until
// it releases. The returned function releases the lock and closes the
// file and must be called when reading is done.
func OpenShared(path string) (f *os.File, release func() error, err error) {
	f, err = os.Open(path) //nolint:gosec // tasks file path chosen by the user
	if err != nil {
		return nil, nil, err
	}

	if err := lockShared(f); err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return f, func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
