//go:build unix
// +build unix

// Package sysstub provides the low-level I/O and allocation entry points a
// bare-metal C library expects to link against.  None of them do anything:
// each ignores its arguments and returns the conventional failure value
// together with an errno.  Correct application code never reaches them, so
// a call is a bug in the caller.
package sysstub

import "golang.org/x/sys/unix"

// Close fails with ENOSYS.
func Close(fd int) (int, error) {
    return -1, unix.ENOSYS
}

// Fstat fails with ENOSYS.  st is left untouched.
func Fstat(fd int, st *unix.Stat_t) (int, error) {
    return -1, unix.ENOSYS
}

// Isatty reports "not a terminal" (0) and ENOSYS.
func Isatty(fd int) (int, error) {
    return 0, unix.ENOSYS
}

// Lseek fails with ENOSYS.
func Lseek(fd int, offset int64, whence int) (int64, error) {
    return -1, unix.ENOSYS
}

// Read fails with ENOSYS.  buf is left untouched and nbytes need not match
// its length.
func Read(fd int, buf []byte, nbytes int) (int, error) {
    return -1, unix.ENOSYS
}

// Write fails with ENOSYS.  nbytes need not match len(buf).
func Write(fd int, buf []byte, nbytes int) (int, error) {
    return -1, unix.ENOSYS
}

// BadBreak is the (void *)-1 value Sbrk returns.
const BadBreak = ^uintptr(0)

// Sbrk never grows the heap.  It returns BadBreak and ENOMEM rather than
// ENOSYS, matching newlib's _sbrk contract for a failed break.
func Sbrk(incr int) (uintptr, error) {
    return BadBreak, unix.ENOMEM
}
