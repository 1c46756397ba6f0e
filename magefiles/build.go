//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the playground binary into bin/.
func (Build) Playground() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/playground", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests of every package.
func Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the math benchmarks.
func Bench() error {
	if _, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "-benchmem", "./engine/math/..."), withStream()); err != nil {
		return err
	}
	return nil
}
