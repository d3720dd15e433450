package server

import (
	"io"
	"net/http"
)

// Greeting is the body of every successful GET /.
const Greeting = "Hello Dexcom!"

func greet(w http.ResponseWriter, req *http.Request) {
	io.WriteString(w, Greeting)
}
