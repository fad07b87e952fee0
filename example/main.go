package main

import (
	"fmt"

	"github.com/mgnsk/kvring"
)

func main() {
	r := kvring.New[string, int]()

	r.PushBack("a", 1)
	r.PushBack("b", 2)
	r.PushBack("a", 3)

	// Insert after the second "a".
	if err := r.InsertAfterNth("a", 2, "c", 4); err != nil {
		panic(err)
	}

	// Walk the ring twice around starting from the anchor.
	c := r.Front()
	for range 2 * r.Len() {
		fmt.Printf("%s=%d ", c.Key(), c.Value())
		c = c.Next()
	}
	fmt.Println()

	// Removing the anchor makes its successor the new anchor.
	if err := r.Remove("a"); err != nil {
		panic(err)
	}

	if err := r.Print(); err != nil {
		panic(err)
	}
}
