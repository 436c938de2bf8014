package main

import "github.com/levelifeofficial/levelife-922003/cmd/lf/root"

func main() {
	root.Execute()
}
