// cmd/hello/main.go
// Hello-world exhibit. A single main exercising common Go constructs
// (goroutines, channels, generics, defer/recover) so the compiled binary
// carries a representative mix of runtime machinery for analysis. No
// internal architecture; the side effects in the binary are the point.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

var globalCounter = 42

type app struct {
	Name    string
	Version string
}

func (a *app) String() string {
	return fmt.Sprintf("%s v%s", a.Name, a.Version)
}

func worker(jobs <-chan int, results chan<- int, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		time.Sleep(5 * time.Millisecond)
		results <- job * 2
	}
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func guarded() (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return globalCounter + 58, nil
}

func main() {
	fmt.Println("Hello, World from Go!")
	fmt.Printf("Runtime: %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())

	fmt.Printf("Application: %s\n", &app{Name: "sample-corpus", Version: "1.0.0"})

	jobs := make(chan int, 5)
	results := make(chan int, 5)
	var wg sync.WaitGroup
	wg.Add(3)
	for w := 0; w < 3; w++ {
		go worker(jobs, results, &wg)
	}
	for j := 1; j <= 5; j++ {
		jobs <- j
	}
	close(jobs)
	go func() {
		wg.Wait()
		close(results)
	}()
	fmt.Print("Results:")
	for r := range results {
		fmt.Printf(" %d", r)
	}
	fmt.Println()

	doubled := mapSlice([]int{1, 2, 3, 4, 5}, func(n int) int { return n * 2 })
	fmt.Printf("Doubled: %v\n", doubled)

	if v, err := guarded(); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Result: %d\n", v)
	}

	if len(os.Args) > 1 {
		fmt.Printf("Arguments: %v\n", os.Args[1:])
	}
}
