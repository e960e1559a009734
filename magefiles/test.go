//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs every test with the race detector, which covers the decode workers
// and the file watcher.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}
