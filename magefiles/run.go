//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Resolves the sample rig in testbed/.
func (Run) Resolve() error {
	mg.Deps(Build.Binary)
	fmt.Println("Resolving testbed scene...")
	_, err := executeCmd("bin/kinema", withArgs("resolve", "testbed/robot.yaml"), withStream())
	return err
}

// Watches the sample rig and re-resolves it on every save.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/kinema", withArgs("watch", "testbed/robot.yaml"), withStream())
	return err
}

// Prints a short spring animation.
func (Run) Tween() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/kinema", withArgs("tween", "--to", "4,0,-2", "--yaw", "90", "--frames", "30"), withStream())
	return err
}
