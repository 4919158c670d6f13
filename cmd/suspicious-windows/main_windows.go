// cmd/suspicious-windows/main_windows.go
// Suspicious-API exhibit for Windows: references VirtualAllocEx,
// WriteProcessMemory and CreateRemoteThread against the current process so
// the classic injection triad appears in the import table. Single main, no
// architecture; nothing is actually injected anywhere.
package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	virtualAllocEx     = kernel32.NewProc("VirtualAllocEx")
	writeProcessMemory = kernel32.NewProc("WriteProcessMemory")
	createRemoteThread = kernel32.NewProc("CreateRemoteThread")
)

func main() {
	self, err := windows.GetCurrentProcess()
	if err != nil {
		fmt.Printf("GetCurrentProcess: %v\n", err)
		return
	}

	mem, _, _ := virtualAllocEx.Call(uintptr(self), 0, 4096,
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if mem == 0 {
		fmt.Println("suspicious_windows executed")
		return
	}

	data := []byte("test\x00")
	var written uintptr
	writeProcessMemory.Call(uintptr(self), mem,
		uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)),
		uintptr(unsafe.Pointer(&written)))

	th, _, _ := createRemoteThread.Call(uintptr(self), 0, 0, mem, 0, 0, 0)
	if th != 0 {
		windows.CloseHandle(windows.Handle(th))
	}

	fmt.Println("suspicious_windows executed")
}
