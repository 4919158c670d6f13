//go:build !windows

// cmd/suspicious-windows/main_stub.go
package main

import "fmt"

func main() {
	fmt.Println("suspicious_windows: windows only")
}
