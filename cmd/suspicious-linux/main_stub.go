//go:build !linux

// cmd/suspicious-linux/main_stub.go
package main

import "fmt"

func main() {
	fmt.Println("suspicious_linux: linux only")
}
