package main

import "github.com/apigraveyard/apigraveyard/cmd/apigraveyard"

func main() { apigraveyard.Execute() }
