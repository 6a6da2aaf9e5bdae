package main

import (
	"fmt"
	"os"

	"github.com/mgnsk/rclist"
)

func main() {
	l := rclist.NewWith(1, rclist.WithDropWriter[int](os.Stdout))
	fmt.Println("After initialization with data 1 :", l)

	l.PushBack(33)
	fmt.Println("After push back an element 33 :", l)

	l.PushFront(22)
	fmt.Println("After push front an element 22 :", l)

	l.PushBack(44)
	fmt.Println("After push back an element 44 :", l)

	l.PopBack()
	fmt.Println("After pop back an element :", l)

	// Releases the remaining nodes.
	if err := l.Close(); err != nil {
		panic(err)
	}

	l = rclist.New(rclist.WithDropWriter[int](os.Stdout))
	defer func() {
		if err := l.Close(); err != nil {
			panic(err)
		}
	}()

	fmt.Println("After initialization :", l)

	l.PushBack(33)
	fmt.Println("After push back an element 33 :", l)

	l.PushFront(22)
	fmt.Println("After push front an element 22 :", l)

	l.PushBack(44)
	fmt.Println("After push back an element 44 :", l)

	l.PopFront()
	fmt.Println("After pop front an element :", l)
}
