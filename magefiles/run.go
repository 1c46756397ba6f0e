//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the playground on the testbed scene.
func (Run) Playground() error {
	fmt.Println("Run playground...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "testbed/playground.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the playground on the testbed scene and reloads it on every save.
func (Run) Watch() error {
	mg.Deps(Build.Playground)
	if _, err := executeCmd("bin/playground", withArgs("-config", "testbed/playground.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
