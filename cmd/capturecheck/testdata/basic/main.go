package main

import "fmt"

type server struct {
	conns []string
	port  int
}

func (s *server) start(done chan<- struct{}) {
	go func() {
		for _, c := range s.conns {
			fmt.Println(c, s.port)
		}
		close(done)
	}()
}

func main() {
	done := make(chan struct{})
	s := &server{conns: []string{"a"}}
	s.start(done)
	<-done
}
