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

package fdio

import "golang.org/x/sys/unix"

// The raw transfer syscalls live behind package vars so tests can script
// errno sequences and count invocations. Production code never reassigns
// them.
var (
	sysRead  = unix.Read
	sysWrite = unix.Write
	sysSend  = rawSend
	sysPoll  = unix.Poll
)
