//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Loads the files listed in donut.toml and lists every resource.
func (Run) Load() error {
	args := []string{"run", ".", "load", "--names"}
	if _, err := os.Stat("donut.toml"); err == nil {
		args = append([]string{"run", ".", "--config", "donut.toml"}, args[2:]...)
	}
	fmt.Println("Run loader...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Prints the chunk tree of a file.
func (Run) Tree(file string) error {
	_, err := executeCmd("go", withArgs("run", ".", "tree", file), withStream())
	return err
}
