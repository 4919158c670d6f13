// cmd/suspicious-linux/main_linux.go
// Suspicious-syscall exhibit for Linux: references ptrace, mprotect and
// execve so those symbols show up in the binary for import/syscall triage.
// Single main, no architecture; behavior mirrors the classic C sample.
package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func main() {
	// ptrace(PTRACE_TRACEME) to trigger the anti-debug heuristic.
	if _, _, errno := unix.Syscall(unix.SYS_PTRACE, unix.PTRACE_TRACEME, 0, 0); errno != 0 {
		fmt.Fprintf(os.Stderr, "ptrace: %v\n", errno)
	}

	// Map a page and flip it to RX, the classic shellcode-staging pattern.
	mem, err := unix.Mmap(-1, 0, unix.Getpagesize(),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err == nil {
		if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
			fmt.Fprintf(os.Stderr, "mprotect: %v\n", err)
		}
		unix.Munmap(mem)
	}

	// Reference execve; on success this replaces the process image.
	if err := unix.Exec("/bin/true", []string{"/bin/true"}, nil); err != nil {
		fmt.Println("suspicious_linux executed")
	}
}
