// Copyright 2025 fdio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux
// +build darwin netbsd freebsd openbsd dragonfly linux

// Package fdio provides transacted byte transfer over raw file descriptors
// and sockets.
//
// All five calls absorb the two transient outcomes of a transfer syscall:
// EINTR is retried immediately and EAGAIN is retried after waiting for the
// descriptor to become ready. Callers therefore never see a "try again"
// result — only definitive success or a definitive terminal failure.
//
// Read and Write are transparent wrappers: one logical attempt, with the
// underlying call's count and error returned as-is, short counts included.
// ReadFull, WriteFull and SendFull loop until the whole slice has been
// moved or a terminal condition is hit.
//
// The package holds no state between calls and introduces no goroutines;
// a call blocks its caller until it completes. Concurrent use on distinct
// descriptors is safe; concurrent use on the same descriptor is exactly as
// safe as the descriptor itself makes it.
package fdio

import "golang.org/x/sys/unix"

// maxTransfer caps the byte count handed to any single transfer syscall.
// Kernels reject oversized counts outright (EINVAL or silent truncation
// at SSIZE_MAX); clamping well below that keeps every underlying call
// valid. Full-transfer calls iterate past the clamp, best-effort calls
// simply return a short count.
const maxTransfer = 8 << 20

// clamp bounds a slice to maxTransfer bytes.
func clamp(p []byte) []byte {
	if len(p) > maxTransfer {
		return p[:maxTransfer]
	}
	return p
}

// Read reads up to len(p) bytes from fd into p, retrying on EINTR and
// waiting out EAGAIN. Everything else — a short count, a zero count at
// end of stream, or a hard errno — is returned exactly as read(2)
// produced it. Read never loops to complete a partial transfer.
func Read(fd int, p []byte) (n int, err error) {
	p = clamp(p)
	for {
		n, err = sysRead(fd, p)
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			waitReady(fd, unix.POLLIN)
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// Write writes up to len(p) bytes from p to fd, retrying on EINTR and
// waiting out EAGAIN. Like Read, it mirrors the underlying write(2)
// result verbatim and never loops to complete a partial transfer.
func Write(fd int, p []byte) (n int, err error) {
	p = clamp(p)
	for {
		n, err = sysWrite(fd, p)
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			waitReady(fd, unix.POLLOUT)
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// ReadFull reads exactly len(p) bytes from fd into p. If the stream ends
// first, it returns the bytes accumulated so far together with ErrEOF.
// Any other failure returns a zero count; the partial count is not
// recoverable on that path.
func ReadFull(fd int, p []byte) (n int, err error) {
	for n < len(p) {
		nr, rerr := sysRead(fd, clamp(p[n:]))
		switch {
		case rerr == unix.EINTR:
			continue
		case rerr == unix.EAGAIN:
			waitReady(fd, unix.POLLIN)
			continue
		case rerr != nil:
			return 0, Exception(rerr, "when reading")
		case nr == 0:
			return n, Exception(ErrEOF, "when reading")
		}
		n += nr
	}
	return n, nil
}

// WriteFull writes exactly len(p) bytes from p to fd. A zero-progress
// result from write(2) is terminal: it only has defined meaning on
// regular files, so the sink is treated as dead rather than retried.
// All failures return a zero count.
func WriteFull(fd int, p []byte) (n int, err error) {
	for n < len(p) {
		nw, werr := sysWrite(fd, clamp(p[n:]))
		switch {
		case werr == unix.EINTR:
			continue
		case werr == unix.EAGAIN:
			waitReady(fd, unix.POLLOUT)
			continue
		case werr != nil:
			return 0, Exception(werr, "when writing")
		case nw == 0:
			return 0, Exception(ErrNoProgress, "when writing")
		}
		n += nw
	}
	return n, nil
}

// SendFull writes exactly len(p) bytes from p to the connected socket fd.
// Semantics match WriteFull, except the transfer goes through sendmsg(2)
// with signal suppression: a peer that has closed its read side surfaces
// as an EPIPE error return, never as SIGPIPE delivered to the process.
func SendFull(fd int, p []byte) (n int, err error) {
	for n < len(p) {
		nw, werr := sysSend(fd, clamp(p[n:]))
		switch {
		case werr == unix.EINTR:
			continue
		case werr == unix.EAGAIN:
			waitReady(fd, unix.POLLOUT)
			continue
		case werr != nil:
			return 0, Exception(werr, "when sending")
		case nw == 0:
			return 0, Exception(ErrNoProgress, "when sending")
		}
		n += nw
	}
	return n, nil
}
